package resolve

import (
	"context"
	"fmt"
	"regexp"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

// DefaultScanLimit bounds how many search hits one main-message lookup reads.
const DefaultScanLimit = 1000

// MainMessageResolver finds the single message that represents a product.
type MainMessageResolver struct {
	ScanLimit int
}

// Resolve scans c for the article code and returns the best candidate, or nil
// when the code is empty or nothing matches. Candidates must contain the code
// as a whole word (case-insensitive) so "AB-12" does not match inside
// "AB-123"; word boundaries are non-letter, non-digit runes, which keeps
// Cyrillic codes matchable. Among candidates the longest text wins, ties
// going to the lowest id.
func (r MainMessageResolver) Resolve(ctx context.Context, c corpus.Corpus, article string) (*domain.Message, error) {
	if article == "" {
		return nil, nil
	}

	limit := r.ScanLimit
	if limit <= 0 {
		limit = DefaultScanLimit
	}

	// RE2's \b is ASCII-only, so the boundary is spelled out explicitly.
	word, err := regexp.Compile(`(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(article) + `(?:$|[^\p{L}\p{N}])`)
	if err != nil {
		return nil, fmt.Errorf("compile article pattern: %w", err)
	}

	msgs, err := c.Messages(ctx, corpus.Query{Search: article, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", article, err)
	}

	var best *domain.Message
	for i := range msgs {
		m := msgs[i]
		if !word.MatchString(m.Text) {
			continue
		}
		// The fullest post is most likely the canonical listing, not a
		// passing mention. Strictly-greater keeps the lowest id on ties
		// because messages arrive in ascending id order.
		if best == nil || len(m.Text) > len(best.Text) {
			best = &msgs[i]
		}
	}
	return best, nil
}

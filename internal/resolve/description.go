package resolve

import (
	"context"
	"regexp"
	"strings"

	"catalog_sync/internal/corpus"
	"catalog_sync/internal/domain"
)

var (
	markupRuns = regexp.MustCompile(`\*+`)
	blankRuns  = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+`)
)

// DescriptionSelector picks and cleans the descriptive text for a resolved
// main message.
type DescriptionSelector struct {
	Priority  []string // ordered sources: "comments", "main"
	StopWords []string // lowercase substrings; a line containing one is dropped
}

// Select walks the source priority and returns the first non-empty text,
// cleaned. "main" is the main message's own text; "comments" is the first
// non-empty reply to it within the comment window of c. When no source
// yields text the raw main text is the fallback (possibly empty). The second
// return value lists lines removed by the stop-word filter, for audit.
func (s DescriptionSelector) Select(ctx context.Context, c corpus.Corpus, main domain.Message) (string, []string, error) {
	var text string

	for _, source := range s.Priority {
		switch source {
		case "main":
			if strings.TrimSpace(main.Text) != "" {
				text = main.Text
			}
		case "comments":
			if c == nil {
				continue
			}
			msgs, err := c.Messages(ctx, corpus.Query{MinID: main.ID, MaxID: main.ID + commentScanWindow})
			if err != nil {
				return "", nil, err
			}
			for _, m := range msgs {
				if m.ReplyTo == main.ID && strings.TrimSpace(m.Text) != "" {
					text = m.Text
					break
				}
			}
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		text = main.Text
	}

	filtered, removed := FilterStopLines(text, s.StopWords)
	return CleanDescription(filtered), removed, nil
}

// FilterStopLines drops every line whose lowercase form contains any stop
// word as a substring. Order-preserving and line-granular; removed lines come
// back for the audit log.
func FilterStopLines(text string, stopWords []string) (string, []string) {
	if text == "" || len(stopWords) == 0 {
		return text, nil
	}
	var kept, removed []string
	for _, line := range strings.Split(text, "\n") {
		low := strings.ToLower(line)
		dropped := false
		for _, w := range stopWords {
			if w != "" && strings.Contains(low, w) {
				dropped = true
				break
			}
		}
		if dropped {
			removed = append(removed, line)
		} else {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), removed
}

// CleanDescription strips bold-markup asterisk runs, collapses runs of blank
// lines to at most one, and trims surrounding whitespace.
func CleanDescription(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = markupRuns.ReplaceAllString(s, "")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Package resolve implements the matching heuristics that tie a catalog
// product to its content in a message corpus: article-code extraction, main
// message selection, photo collection and description selection.
package resolve

import (
	"regexp"
	"strings"

	"catalog_sync/internal/domain"
)

// articlePattern finds an "Артикул: CODE" / "Article: CODE" token in a
// product description. The code is alphanumeric with hyphens.
var articlePattern = regexp.MustCompile(`(?i)(?:артикул|article)[ :]*([A-Za-z0-9-]+)`)

// ArticleExtractor derives the normalized search key for a catalog record.
// Pure: same record and configuration always yield the same code.
type ArticleExtractor struct {
	PreferSiteField bool
	TakeFirstN      int
}

// Extract returns the article code, possibly empty. The site SKU wins when
// preferred and present, then the description pattern, then the SKU as a
// fallback. Codes with hyphens are cut to their first two segments; a
// positive TakeFirstN then truncates to that many characters (characters,
// not segments: "AB-1234" with N=6 is "AB-123").
func (e ArticleExtractor) Extract(rec domain.CatalogRecord) string {
	sku := strings.TrimSpace(rec.SKU)

	var raw string
	if e.PreferSiteField && sku != "" {
		raw = sku
	} else if m := articlePattern.FindStringSubmatch(rec.Description); m != nil {
		raw = strings.TrimSpace(m[1])
	} else {
		raw = sku
	}
	if raw == "" {
		return ""
	}

	code := raw
	if parts := strings.SplitN(raw, "-", 3); len(parts) >= 2 {
		code = parts[0] + "-" + parts[1]
	}

	if e.TakeFirstN > 0 {
		if r := []rune(code); len(r) > e.TakeFirstN {
			code = string(r[:e.TakeFirstN])
		}
	}
	return code
}

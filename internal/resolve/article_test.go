package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog_sync/internal/domain"
)

func TestArticleExtractor_Extract(t *testing.T) {
	tests := []struct {
		name      string
		extractor ArticleExtractor
		rec       domain.CatalogRecord
		want      string
	}{
		{
			name:      "site sku preferred when present",
			extractor: ArticleExtractor{PreferSiteField: true},
			rec:       domain.CatalogRecord{SKU: "AB-12", Description: "Артикул: CD-34"},
			want:      "AB-12",
		},
		{
			name:      "description pattern wins when sku not preferred",
			extractor: ArticleExtractor{},
			rec:       domain.CatalogRecord{SKU: "AB-12", Description: "Товар. Артикул: CD-34. Доставка."},
			want:      "CD-34",
		},
		{
			name:      "english marker",
			extractor: ArticleExtractor{},
			rec:       domain.CatalogRecord{Description: "Article: XY-99Z"},
			want:      "XY-99Z",
		},
		{
			name:      "case insensitive marker",
			extractor: ArticleExtractor{},
			rec:       domain.CatalogRecord{Description: "АРТИКУЛ AB-77"},
			want:      "AB-77",
		},
		{
			name:      "sku fallback when description has no marker",
			extractor: ArticleExtractor{},
			rec:       domain.CatalogRecord{SKU: "QQ-55", Description: "no code here"},
			want:      "QQ-55",
		},
		{
			name:      "first two hyphen segments kept",
			extractor: ArticleExtractor{PreferSiteField: true},
			rec:       domain.CatalogRecord{SKU: "AB-1234-RED-XL"},
			want:      "AB-1234",
		},
		{
			name:      "character truncation after segment cut",
			extractor: ArticleExtractor{PreferSiteField: true, TakeFirstN: 6},
			rec:       domain.CatalogRecord{SKU: "AB-1234-RED"},
			want:      "AB-123",
		},
		{
			name:      "truncation is rune based",
			extractor: ArticleExtractor{PreferSiteField: true, TakeFirstN: 4},
			rec:       domain.CatalogRecord{SKU: "ЖК-999"},
			want:      "ЖК-9",
		},
		{
			name:      "short code unaffected by limit",
			extractor: ArticleExtractor{PreferSiteField: true, TakeFirstN: 10},
			rec:       domain.CatalogRecord{SKU: "AB-1"},
			want:      "AB-1",
		},
		{
			name:      "no hyphen passes through",
			extractor: ArticleExtractor{PreferSiteField: true},
			rec:       domain.CatalogRecord{SKU: "PLAIN123"},
			want:      "PLAIN123",
		},
		{
			name:      "whitespace sku treated as absent",
			extractor: ArticleExtractor{PreferSiteField: true},
			rec:       domain.CatalogRecord{SKU: "   ", Description: "Артикул: ZZ-11"},
			want:      "ZZ-11",
		},
		{
			name:      "nothing to extract",
			extractor: ArticleExtractor{},
			rec:       domain.CatalogRecord{Description: "just text"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.extractor.Extract(tt.rec))
		})
	}
}

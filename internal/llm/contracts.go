package llm

import "context"

// MandiItem is one priced line-variant from a mandi message. Every quality,
// moisture or price variation is its own item; variants are never merged.
type MandiItem struct {
	NameUrdu    string   `json:"nameUrdu"`
	NameEnglish string   `json:"nameEnglish"`
	Price       *float64 `json:"price,omitempty"`    // single price
	PriceMin    *float64 `json:"priceMin,omitempty"` // range lower bound (with سے)
	PriceMax    *float64 `json:"priceMax,omitempty"` // range upper bound
	Unit        string   `json:"unit"`               // usually 40kg
	Moisture    string   `json:"moisture,omitempty"` // e.g. "12%"
	Mixture     string   `json:"mixture,omitempty"`  // e.g. "20-25%"
	Quality     string   `json:"quality,omitempty"`  // Dry/Medium/VIP/Export
}

// HasRange reports whether the item carries a min/max price range.
func (i MandiItem) HasRange() bool {
	return i.PriceMin != nil && i.PriceMax != nil
}

type MandiCategory struct {
	Category string      `json:"category"`
	Items    []MandiItem `json:"items"`
}

// ParsedMandiData is the normalized shape we want from the LLM. Produced once
// per submitted message, immutable after creation, never itself persisted.
type ParsedMandiData struct {
	Date       string          `json:"date"`   // DD.MM.YYYY or similar
	Market     string          `json:"market"` // e.g. غلہ منڈی عارفوالا
	Source     string          `json:"source,omitempty"`
	Categories []MandiCategory `json:"categories"`
}

// TotalItems counts items across all categories.
func (d ParsedMandiData) TotalItems() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Items)
	}
	return n
}

type ExtractRequest struct {
	RawText string
}

// MandiExtractor is the interface the report pipeline depends on.
type MandiExtractor interface {
	ExtractMandiData(ctx context.Context, req ExtractRequest) (ParsedMandiData, []byte /*rawJSON*/, error)
}

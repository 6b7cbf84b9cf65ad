package models

import "github.com/shopspring/decimal"

// QuantityUnit says what a line quantity counts: grams of loose snacks or
// whole pieces. Gram-priced goods always carry Grams; piece-priced goods
// carry Pieces so their price is never multiplied by a gram count.
type QuantityUnit string

const (
	Grams  QuantityUnit = "grams"
	Pieces QuantityUnit = "pieces"
)

// Product is one catalog entry. PricePerGram is the canonical value every
// monetary computation keys off; for piece-priced goods it holds the
// per-piece price and QuantityUnit is Pieces. OriginalPrice and PriceUnit
// are retained only for display and are refreshed on every price edit.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	PricePerGram  decimal.Decimal `json:"pricePerGram"`
	PriceUnit     string          `json:"priceUnit,omitempty"`
	OriginalPrice decimal.Decimal `json:"originalPrice,omitempty"`
	QuantityUnit  QuantityUnit    `json:"quantityUnit"`
	Images        []string        `json:"images"`
	InStock       bool            `json:"inStock"`
	Popular       bool            `json:"popular,omitempty"`
}

// CoverImage returns the first image reference, the default shown for the
// product, or "" when no images were entered.
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

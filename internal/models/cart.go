package models

import "github.com/shopspring/decimal"

// CartLine is one entry in the active cart. Name, PricePerGram and Image
// are snapshots copied from the product at add time and are never re-synced
// against later catalog edits.
type CartLine struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PricePerGram decimal.Decimal `json:"pricePerGram"`
	Image        string          `json:"image"`
	Quantity     int64           `json:"quantity"`
	Unit         QuantityUnit    `json:"unit"`
}

// LineFromProduct snapshots a product into a new cart line.
func LineFromProduct(p Product, quantity int64) CartLine {
	unit := p.QuantityUnit
	if unit == "" {
		unit = Grams
	}
	return CartLine{
		ID:           p.ID,
		Name:         p.Name,
		PricePerGram: p.PricePerGram,
		Image:        p.CoverImage(),
		Quantity:     quantity,
		Unit:         unit,
	}
}

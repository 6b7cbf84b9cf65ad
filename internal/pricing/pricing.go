// Package pricing converts entered prices into the canonical per-unit price
// and computes line and order totals. All arithmetic stays at full decimal
// precision; rounding happens only at display boundaries.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/models"
)

// PriceUnit is the unit a product price was originally entered in.
type PriceUnit string

const (
	PerPiece PriceUnit = "per-piece"
	PerGram  PriceUnit = "per-gram"
	Per100g  PriceUnit = "per-100g"
	Per250g  PriceUnit = "per-250g"
	Per500g  PriceUnit = "per-500g"
	PerKg    PriceUnit = "per-kg"
)

var ErrUnknownUnit = errors.New("unknown price unit")

// gramsPerUnit holds the exact divisor from an entered gram-based price to
// the canonical per-gram price. per-piece is absent: piece prices are not
// gram-convertible and pass through unchanged.
var gramsPerUnit = map[PriceUnit]int64{
	PerGram: 1,
	Per100g: 100,
	Per250g: 250,
	Per500g: 500,
	PerKg:   1000,
}

// ParsePriceUnit validates a unit string. The empty string resolves to
// per-gram, the unit catalog records default to.
func ParsePriceUnit(s string) (PriceUnit, error) {
	switch u := PriceUnit(s); u {
	case "":
		return PerGram, nil
	case PerPiece, PerGram, Per100g, Per250g, Per500g, PerKg:
		return u, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Canonical converts a price entered in the given unit to the canonical
// per-unit price: per-gram for gram-based units, the price itself for
// per-piece goods.
func Canonical(price decimal.Decimal, unit PriceUnit) (decimal.Decimal, error) {
	if unit == PerPiece {
		return price, nil
	}
	grams, ok := gramsPerUnit[unit]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return price.Div(decimal.NewFromInt(grams)), nil
}

// QuantityUnitFor reports how quantities of a product priced in the given
// unit are counted.
func QuantityUnitFor(unit PriceUnit) models.QuantityUnit {
	if unit == PerPiece {
		return models.Pieces
	}
	return models.Grams
}

// LineTotal is the full-precision total for one cart line: canonical price
// times quantity in the line's own unit.
func LineTotal(l models.CartLine) decimal.Decimal {
	return l.PricePerGram.Mul(decimal.NewFromInt(l.Quantity))
}

// Subtotal sums full-precision line totals. Per-line rounding never feeds
// back into the sum, so rounding error cannot compound across lines.
func Subtotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l))
	}
	return total
}

// DisplayAmount rounds a monetary value to whole currency units. Only the
// display layer calls this; stored totals keep full precision.
func DisplayAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

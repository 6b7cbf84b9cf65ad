// Package coupon matches discount codes against a fixed table and computes
// discount amounts. The discount is transient cart-view state: a failed
// lookup must leave whatever discount the caller already holds untouched,
// so a garbage re-submit cannot wipe a previously applied code.
package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/models"
)

// ErrNotFound signals an unmatched code. Callers keep their prior discount
// and surface a user-facing notice.
var ErrNotFound = errors.New("coupon not found")

// Evaluator looks codes up case-insensitively in a fixed table.
type Evaluator struct {
	table []models.Coupon
}

// NewEvaluator returns the storefront's standard table: WELCOME10 takes
// 10% off the subtotal, FESTIVE50 takes a flat 50 off.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWith([]models.Coupon{
		{Code: "WELCOME10", DiscountType: models.DiscountPercentage, DiscountValue: decimal.NewFromInt(10)},
		{Code: "FESTIVE50", DiscountType: models.DiscountFlat, DiscountValue: decimal.NewFromInt(50)},
	})
}

func NewEvaluatorWith(table []models.Coupon) *Evaluator {
	return &Evaluator{table: table}
}

// Apply computes the discount a code yields against the given subtotal.
// Flat discounts are not capped here; Total clamps the final amount.
func (e *Evaluator) Apply(code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	for _, c := range e.table {
		if !strings.EqualFold(c.Code, code) {
			continue
		}
		if c.DiscountType == models.DiscountPercentage {
			return subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)), nil
		}
		return c.DiscountValue, nil
	}
	return decimal.Zero, ErrNotFound
}

// Total is the payable amount after discount, clamped at zero.
func Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

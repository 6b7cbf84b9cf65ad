package models

import "github.com/shopspring/decimal"

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Coupon maps a code to a fixed discount rule. Codes match
// case-insensitively.
type Coupon struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
}

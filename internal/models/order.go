package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is a display enum. The placement flow only ever produces
// StatusOrdered; Shipped and Delivered exist for rendering historical data.
type OrderStatus string

const (
	StatusOrdered   OrderStatus = "Ordered"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

// Customer is the delivery/contact form snapshot captured at checkout.
type Customer struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"`
}

// Order is immutable once created: a frozen snapshot of the cart, the
// customer form and the computed total at the moment of placement.
type Order struct {
	ID       string          `json:"id"`
	Items    []CartLine      `json:"items"`
	Customer Customer        `json:"customer"`
	Total    decimal.Decimal `json:"total"`
	Status   OrderStatus     `json:"status"`
	Date     time.Time       `json:"date"`
}

// UserProfile is the profile snapshot written identically by both the
// sign-up and login flows. There is no separate account store.
type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Package ledger keeps the append-only record of placed orders. Orders are
// written once at checkout and never mutated, deleted or reordered; the
// display layer reverses the list for most-recent-first.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/pricing"
	"github.com/ponmalar/snackstore/internal/storage"
)

// ErrEmptyCart rejects checkout on an empty cart; the caller sends the
// user back to the cart view instead of creating a degenerate order.
var ErrEmptyCart = errors.New("cart is empty")

// CartSource is what Place needs from the cart store.
type CartSource interface {
	Lines(ctx context.Context) ([]models.CartLine, error)
	Clear(ctx context.Context) error
}

// Ledger appends orders under storage.KeyOrders.
type Ledger struct {
	blobs storage.Blobs
	now   func() time.Time
	newID func() string
}

func New(blobs storage.Blobs) *Ledger {
	return &Ledger{
		blobs: blobs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Place freezes the current cart into a new order, appends it to the
// ledger and clears the cart. The total is the undiscounted subtotal; any
// cart-view coupon discount is not carried into the order. Status is
// always Ordered.
func (l *Ledger) Place(ctx context.Context, cart CartSource, customer models.Customer) (models.Order, error) {
	lines, err := cart.Lines(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	order := models.Order{
		ID:       l.newID(),
		Items:    items,
		Customer: customer,
		Total:    pricing.Subtotal(items),
		Status:   models.StatusOrdered,
		Date:     l.now().UTC(),
	}

	orders, err := l.List(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if err := l.save(ctx, append(orders, order)); err != nil {
		return models.Order{}, err
	}
	if err := cart.Clear(ctx); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// List returns all orders in placement order.
func (l *Ledger) List(ctx context.Context) ([]models.Order, error) {
	data, err := l.blobs.Get(ctx, storage.KeyOrders)
	if err != nil {
		if errors.Is(err, storage.ErrNoBlob) {
			return nil, nil
		}
		return nil, fmt.Errorf("read orders: %w", err)
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// Revenue sums the totals of every placed order.
func (l *Ledger) Revenue(ctx context.Context) (decimal.Decimal, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	return total, nil
}

func (l *Ledger) save(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := l.blobs.Put(ctx, storage.KeyOrders, data); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}

// Package cart holds the active shopping cart. The persisted blob is the
// single source of truth: every operation re-reads it before mutating, so
// independent callers (cart view, checkout, product cards) never act on a
// cached copy.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/pricing"
	"github.com/ponmalar/snackstore/internal/storage"
)

var (
	// ErrNotFound is returned when no cart line carries the given id.
	ErrNotFound = errors.New("product not in cart")
	// ErrQuantityBelowMinimum rejects a mutation that would take a line
	// under its floor. The line is left unchanged, never removed.
	ErrQuantityBelowMinimum = errors.New("quantity below minimum")
)

// Store persists the cart as an ordered list under storage.KeyCart.
type Store struct {
	blobs storage.Blobs
}

func NewStore(blobs storage.Blobs) *Store {
	return &Store{blobs: blobs}
}

// Lines reads the persisted cart. A missing blob is an empty cart.
func (s *Store) Lines(ctx context.Context) ([]models.CartLine, error) {
	data, err := s.blobs.Get(ctx, storage.KeyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNoBlob) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart: %w", err)
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (s *Store) save(ctx context.Context, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.blobs.Put(ctx, storage.KeyCart, data); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// Add merges the product into the cart: an existing line with the same id
// gets its quantity incremented, otherwise a new snapshot line is appended.
// quantity <= 0 selects the default add amount for the product's unit.
// Stock is deliberately not checked here; the storefront disables the Add
// control instead.
func (s *Store) Add(ctx context.Context, p models.Product, quantity int64) error {
	unit := p.QuantityUnit
	if unit == "" {
		unit = models.Grams
	}
	if quantity <= 0 {
		quantity = pricing.DefaultAdd(unit)
	}

	lines, err := s.Lines(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ID == p.ID {
			lines[i].Quantity += quantity
			return s.save(ctx, lines)
		}
	}
	return s.save(ctx, append(lines, models.LineFromProduct(p, quantity)))
}

// UpdateQuantity overwrites a line's quantity. Values under the line's
// floor are rejected and the cart is left untouched; removal is only ever
// the explicit Remove operation.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	lines, err := s.Lines(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		if quantity < pricing.MinQuantity(lines[i].Unit) {
			return ErrQuantityBelowMinimum
		}
		lines[i].Quantity = quantity
		return s.save(ctx, lines)
	}
	return ErrNotFound
}

// Nudge steps a line's quantity by one unit step in the given direction
// (+1 or -1), the operation behind the cart's ± controls.
func (s *Store) Nudge(ctx context.Context, id string, direction int) error {
	lines, err := s.Lines(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		next := lines[i].Quantity + int64(direction)*pricing.Step(lines[i].Unit)
		if next < pricing.MinQuantity(lines[i].Unit) {
			return ErrQuantityBelowMinimum
		}
		lines[i].Quantity = next
		return s.save(ctx, lines)
	}
	return ErrNotFound
}

// Remove deletes a line unconditionally, regardless of quantity. Removing
// an id that is not present is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	lines, err := s.Lines(ctx)
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.save(ctx, kept)
}

// Clear empties the cart. Invoked once, right after an order is placed.
func (s *Store) Clear(ctx context.Context) error {
	return s.save(ctx, nil)
}

// Subtotal is the full-precision sum over the persisted lines.
func (s *Store) Subtotal(ctx context.Context) (decimal.Decimal, error) {
	lines, err := s.Lines(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return pricing.Subtotal(lines), nil
}

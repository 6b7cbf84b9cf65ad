package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/pricing"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductInput is what the admin form submits for an add or edit.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	PriceUnit   string          `json:"priceUnit"`
	Images      []string        `json:"images"`
}

// WorkingSet is the admin's mutable product collection, seeded from the
// immutable snapshot. Edits live here for the process lifetime and are
// never written back to the catalog source.
type WorkingSet struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewWorkingSet(snap *Snapshot) *WorkingSet {
	return &WorkingSet{products: snap.All()}
}

// All returns a copy of the working products.
func (w *WorkingSet) All() []models.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Product, len(w.products))
	copy(out, w.products)
	return out
}

// Add creates a new product from the form input. New products start in
// stock and not popular, like the admin dashboard creates them.
func (w *WorkingSet) Add(in ProductInput) (models.Product, error) {
	p, err := fromInput(uuid.NewString(), in)
	if err != nil {
		return models.Product{}, err
	}
	p.InStock = true

	w.mu.Lock()
	defer w.mu.Unlock()
	w.products = append(w.products, p)
	return p, nil
}

// Update replaces a product's editable fields. The canonical price is
// recomputed from the submitted price and unit so the display values can
// never go stale against it.
func (w *WorkingSet) Update(id string, in ProductInput) (models.Product, error) {
	p, err := fromInput(id, in)
	if err != nil {
		return models.Product{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.products {
		if w.products[i].ID != id {
			continue
		}
		p.InStock = w.products[i].InStock
		p.Popular = w.products[i].Popular
		w.products[i] = p
		return p, nil
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the working set.
func (w *WorkingSet) Delete(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.products {
		if w.products[i].ID == id {
			w.products = append(w.products[:i], w.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func fromInput(id string, in ProductInput) (models.Product, error) {
	if in.Name == "" || !in.Price.IsPositive() {
		return models.Product{}, ErrInvalidProduct
	}
	unit, err := pricing.ParsePriceUnit(in.PriceUnit)
	if err != nil {
		return models.Product{}, err
	}
	canonical, err := pricing.Canonical(in.Price, unit)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		ID:            id,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		PricePerGram:  canonical,
		PriceUnit:     in.PriceUnit,
		OriginalPrice: in.Price,
		QuantityUnit:  pricing.QuantityUnitFor(unit),
		Images:        in.Images,
	}, nil
}

// Package catalog loads the read-only product list and layers the admin
// working set on top of it. The snapshot is loaded once at startup and
// injected everywhere a product lookup is needed; nothing in this package
// ever writes back to the source.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/concurrency"
	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/pricing"
)

//go:embed products.json
var seed []byte

// record is the raw catalog entry shape. Entries may carry either the
// canonical price directly or an entered price plus unit to normalise from.
type record struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	PricePerGram  decimal.Decimal `json:"pricePerGram"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	PriceUnit     string          `json:"priceUnit"`
	Images        []string        `json:"images"`
	InStock       bool            `json:"inStock"`
	Popular       bool            `json:"popular"`
}

const normalizeWorkers = 4

// Snapshot is the immutable catalog. Consumers receive it by reference and
// can only read.
type Snapshot struct {
	products []models.Product
	byID     map[string]int
}

// Load reads the catalog from path, or from the embedded seed when path is
// empty, and normalises every record to its canonical price.
func Load(ctx context.Context, path string) (*Snapshot, error) {
	data := seed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]models.Product, len(records))
	errs := make([]error, len(records))
	concurrency.ForEach(ctx, normalizeWorkers, len(records), func(_ context.Context, i int) {
		products[i], errs[i] = normalize(records[i])
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("catalog record %q: %w", records[i].ID, err)
		}
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Snapshot{products: products, byID: byID}, nil
}

// normalize computes the canonical price for one record. A record with an
// entered price and unit is converted through the unit table; one carrying
// only pricePerGram is taken as already canonical.
func normalize(r record) (models.Product, error) {
	unit, err := pricing.ParsePriceUnit(r.PriceUnit)
	if err != nil {
		return models.Product{}, err
	}

	canonical := r.PricePerGram
	if !r.OriginalPrice.IsZero() {
		canonical, err = pricing.Canonical(r.OriginalPrice, unit)
		if err != nil {
			return models.Product{}, err
		}
	}

	return models.Product{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		PricePerGram:  canonical,
		PriceUnit:     r.PriceUnit,
		OriginalPrice: r.OriginalPrice,
		QuantityUnit:  pricing.QuantityUnitFor(unit),
		Images:        r.Images,
		InStock:       r.InStock,
		Popular:       r.Popular,
	}, nil
}

// All returns a copy of every product in catalog order.
func (s *Snapshot) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks a product up by its id.
func (s *Snapshot) ByID(id string) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Categories returns the distinct categories, sorted.
func (s *Snapshot) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Popular returns the curated promotional subset.
func (s *Snapshot) Popular() []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Popular {
			out = append(out, p)
		}
	}
	return out
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponmalar/snackstore/internal/models"
)

// ListProducts handles GET /products with optional ?category= and
// ?popular=true filters.
func (s *Storefront) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := s.Catalog.All()
	if r.URL.Query().Get("popular") == "true" {
		products = s.Catalog.Popular()
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"categories": s.Catalog.Categories(),
	})
}

// GetProduct handles GET /products/{id}.
func (s *Storefront) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Catalog.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

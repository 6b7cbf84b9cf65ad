package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponmalar/snackstore/internal/catalog"
	"github.com/ponmalar/snackstore/internal/pricing"
)

// Admin product management operates on the working set only; nothing here
// persists back to the catalog source.

// AdminListProducts handles GET /admin/products.
func (s *Storefront) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": s.Admin.All()})
}

// AdminAddProduct handles POST /admin/products.
func (s *Storefront) AdminAddProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	p, err := s.Admin.Add(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// AdminUpdateProduct handles PUT /admin/products/{id}.
func (s *Storefront) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	p, err := s.Admin.Update(chi.URLParam(r, "id"), in)
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product_not_found")
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid_product")
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

// AdminDeleteProduct handles DELETE /admin/products/{id}.
func (s *Storefront) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := s.Admin.Delete(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product_not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// AdminStats handles GET /admin/stats: the dashboard's header numbers.
func (s *Storefront) AdminStats(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	revenue, err := s.Orders.Revenue(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_products": len(s.Admin.All()),
		"total_orders":   len(orders),
		"revenue":        pricing.DisplayAmount(revenue),
	})
}

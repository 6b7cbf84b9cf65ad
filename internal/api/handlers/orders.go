package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ponmalar/snackstore/internal/ledger"
	"github.com/ponmalar/snackstore/internal/models"
)

type checkoutRequest struct {
	Customer models.Customer `json:"customer"`
}

// requiredCustomerFields mirrors the checkout form's required inputs;
// email is optional.
func missingCustomerFields(c models.Customer) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", c.Name},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"pincode", c.Pincode},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Checkout handles POST /checkout: validates the customer form, places the
// order and clears the cart. An empty cart is a 409 the client answers by
// sending the user back to the cart view.
func (s *Storefront) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if missing := missingCustomerFields(req.Customer); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":          "missing_required_fields",
			"missing_fields": missing,
		})
		return
	}
	if req.Customer.PaymentMethod == "" {
		req.Customer.PaymentMethod = "cash"
	}

	order, err := s.Orders.Place(r.Context(), s.Cart, req.Customer)
	if errors.Is(err, ledger.ErrEmptyCart) {
		writeError(w, http.StatusConflict, "cart_is_empty")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders, most recent first.
func (s *Storefront) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	// ledger order is oldest-first; display wants the reverse
	reversed := make([]models.Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": reversed})
}

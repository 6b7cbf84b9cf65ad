package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ponmalar/snackstore/internal/cart"
	"github.com/ponmalar/snackstore/internal/coupon"
	"github.com/ponmalar/snackstore/internal/models"
	"github.com/ponmalar/snackstore/internal/pricing"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity,omitempty"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type nudgeRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

type cartLineView struct {
	models.CartLine
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartView struct {
	Lines    []cartLineView  `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *Storefront) cartView(r *http.Request) (cartView, error) {
	lines, err := s.Cart.Lines(r.Context())
	if err != nil {
		return cartView{}, err
	}
	view := cartView{Lines: make([]cartLineView, 0, len(lines))}
	for _, l := range lines {
		view.Lines = append(view.Lines, cartLineView{
			CartLine:  l,
			LineTotal: pricing.DisplayAmount(pricing.LineTotal(l)),
		})
	}
	view.Subtotal = pricing.DisplayAmount(pricing.Subtotal(lines))
	return view, nil
}

// GetCart handles GET /cart.
func (s *Storefront) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.cartView(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddItem handles POST /cart/items. An omitted or non-positive quantity
// means the default add amount for the product's unit.
func (s *Storefront) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	p, ok := s.Catalog.ByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found")
		return
	}
	if err := s.Cart.Add(r.Context(), p, req.Quantity); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	view, err := s.cartView(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateItem handles PATCH /cart/items/{id}.
func (s *Storefront) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	err := s.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	switch {
	case errors.Is(err, cart.ErrNotFound):
		writeError(w, http.StatusNotFound, "item_not_in_cart")
	case errors.Is(err, cart.ErrQuantityBelowMinimum):
		writeError(w, http.StatusUnprocessableEntity, "quantity_below_minimum")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error")
	default:
		view, verr := s.cartView(r)
		if verr != nil {
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// NudgeItem handles POST /cart/items/{id}/nudge, the ± step controls.
func (s *Storefront) NudgeItem(w http.ResponseWriter, r *http.Request) {
	var req nudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	direction := 0
	switch req.Direction {
	case "up":
		direction = 1
	case "down":
		direction = -1
	default:
		writeError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}
	err := s.Cart.Nudge(r.Context(), chi.URLParam(r, "id"), direction)
	switch {
	case errors.Is(err, cart.ErrNotFound):
		writeError(w, http.StatusNotFound, "item_not_in_cart")
	case errors.Is(err, cart.ErrQuantityBelowMinimum):
		writeError(w, http.StatusUnprocessableEntity, "quantity_below_minimum")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error")
	default:
		view, verr := s.cartView(r)
		if verr != nil {
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// RemoveItem handles DELETE /cart/items/{id}; unconditional.
func (s *Storefront) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Cart.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	view, err := s.cartView(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ClearCart handles DELETE /cart.
func (s *Storefront) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.Cart.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, cartView{Lines: []cartLineView{}, Subtotal: decimal.Zero})
}

// ApplyCoupon handles POST /cart/coupon. On an unmatched code the response
// is a 404 and the caller keeps whatever discount it already had; a valid
// code returns the discount and the clamped payable total for the current
// subtotal.
func (s *Storefront) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	subtotal, err := s.Cart.Subtotal(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	discount, err := s.Coupons.Apply(req.Code, subtotal)
	if errors.Is(err, coupon.ErrNotFound) {
		writeError(w, http.StatusNotFound, "coupon_not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subtotal": pricing.DisplayAmount(subtotal),
		"discount": pricing.DisplayAmount(discount),
		"total":    pricing.DisplayAmount(coupon.Total(subtotal, discount)),
	})
}

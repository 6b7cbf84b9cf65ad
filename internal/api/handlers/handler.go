// Package handlers implements the storefront's HTTP endpoints. Handlers
// only decode requests, call into the domain packages and map their errors
// to status codes; all business rules live below this layer.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ponmalar/snackstore/internal/cart"
	"github.com/ponmalar/snackstore/internal/catalog"
	"github.com/ponmalar/snackstore/internal/coupon"
	"github.com/ponmalar/snackstore/internal/ledger"
	"github.com/ponmalar/snackstore/internal/storage"
)

// Storefront bundles the domain collaborators every endpoint needs.
type Storefront struct {
	Catalog *catalog.Snapshot
	Admin   *catalog.WorkingSet
	Cart    *cart.Store
	Coupons *coupon.Evaluator
	Orders  *ledger.Ledger
	Blobs   storage.Blobs
}

func New(snap *catalog.Snapshot, blobs storage.Blobs) *Storefront {
	return &Storefront{
		Catalog: snap,
		Admin:   catalog.NewWorkingSet(snap),
		Cart:    cart.NewStore(blobs),
		Coupons: coupon.NewEvaluator(),
		Orders:  ledger.New(blobs),
		Blobs:   blobs,
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ponmalar/snackstore/internal/storage"
)

// AdminOnly gates a route subtree on the presence of the adminAuth flag.
// The flag is presence-only: no credential is ever validated to set it.
func AdminOnly(blobs storage.Blobs) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := blobs.Get(r.Context(), storage.KeyAdminAuth)
			if errors.Is(err, storage.ErrNoBlob) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "admin_login_required"})
				return
			}
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

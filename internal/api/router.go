package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponmalar/snackstore/internal/api/handlers"
	"github.com/ponmalar/snackstore/internal/api/middleware"
	"github.com/ponmalar/snackstore/internal/catalog"
	"github.com/ponmalar/snackstore/internal/storage"
)

// NewRouter builds the HTTP router for the storefront service.
func NewRouter(snap *catalog.Snapshot, blobs storage.Blobs) http.Handler {
	r := chi.NewRouter()

	s := handlers.New(snap, blobs)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.ListProducts)
		r.Get("/{id}", s.GetProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", s.GetCart)
		r.Delete("/", s.ClearCart)
		r.Post("/items", s.AddItem)
		r.Patch("/items/{id}", s.UpdateItem)
		r.Post("/items/{id}/nudge", s.NudgeItem)
		r.Delete("/items/{id}", s.RemoveItem)
		r.Post("/coupon", s.ApplyCoupon)
	})

	r.Post("/checkout", s.Checkout)
	r.Get("/orders", s.ListOrders)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.Login)
		r.Post("/signup", s.SignUp)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", s.AdminLogin)
		r.Post("/logout", s.AdminLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly(blobs))
			r.Get("/products", s.AdminListProducts)
			r.Post("/products", s.AdminAddProduct)
			r.Put("/products/{id}", s.AdminUpdateProduct)
			r.Delete("/products/{id}", s.AdminDeleteProduct)
			r.Get("/stats", s.AdminStats)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

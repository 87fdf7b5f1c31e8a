package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the catalog API. writeLimiter wraps the POST
// endpoints only; pass nil to leave them unlimited.
func RegisterRoutes(r chi.Router, products *ProductHandler, categories *CategoryHandler, writeLimiter func(http.Handler) http.Handler) {
	limited := func(h http.HandlerFunc) http.Handler {
		if writeLimiter == nil {
			return h
		}
		return writeLimiter(h)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Method(http.MethodPost, "/", limited(products.Create))
			r.Get("/{id}", products.Get)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Method(http.MethodPost, "/", limited(categories.Create))
			r.Get("/{id}", categories.Get)
			r.Get("/{id}/products", products.ListByCategory)
		})
	})
}

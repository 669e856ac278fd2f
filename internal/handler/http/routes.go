package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the full route table with its middleware pipeline:
// Recoverer → trace ID → logging → rate limiting → request timeout, with
// the auth gate added per-group.
//
// Product reads are public; product mutations require authentication but no
// ownership. Every tutorial route requires authentication, and tutorial
// mutations are additionally ownership-gated inside the service layer.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit)
	router.Use(middleware.Timeout(requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{id}", h.getProduct)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Get("/api/tutorials", h.listTutorials)
		r.Get("/api/tutorials/{id}", h.getTutorial)
		r.Post("/api/tutorials", h.createTutorial)
		r.Put("/api/tutorials/{id}", h.updateTutorial)
		r.Delete("/api/tutorials/{id}", h.deleteTutorial)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

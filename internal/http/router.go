package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Storefront is everything the HTTP surface needs from the service layer.
type Storefront interface {
	CatalogService
	CartService
	CheckoutService
}

const maxRequestBodySize = 1 << 20 // 1MB

func NewRouter(svc Storefront, logger *zap.Logger, requestTimeout time.Duration) http.Handler {
	products := NewProductHandler(svc)
	carts := NewCartHandler(svc)
	checkouts := NewCheckoutHandler(svc)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(middleware.RequestSize(maxRequestBodySize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", products.Categories)
		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)
		r.Post("/products/{id}/questions", products.AskQuestion)
		r.Post("/newsletter", products.Subscribe)

		r.Post("/sessions", carts.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Delete("/sessions", carts.EndSession)

			r.Get("/cart", carts.Get)
			r.Delete("/cart", carts.Clear)
			r.Post("/cart/items", carts.AddItem)
			r.Put("/cart/items/{id}", carts.UpdateItem)
			r.Delete("/cart/items/{id}", carts.RemoveItem)

			r.Post("/checkout", checkouts.Open)
			r.Get("/checkout", checkouts.Get)
			r.Delete("/checkout", checkouts.Close)
			r.Post("/checkout/next", checkouts.Next)
			r.Post("/checkout/back", checkouts.Back)
			r.Patch("/checkout/form", checkouts.UpdateForm)
			r.Post("/checkout/place", checkouts.Place)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

type CatalogService interface {
	Categories() []domain.Category
	Products(query string, category domain.Category) []domain.Product
	Product(id string) (domain.Product, error)
	SubmitQuestion(ctx context.Context, productID, question string) (domain.Notification, bool, error)
	Subscribe(ctx context.Context, email string) domain.Notification
}

type ProductHandler struct {
	service CatalogService
}

func NewProductHandler(service CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: names})
}

// List returns the products visible for the q and category query parameters.
// A missing category means every category.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := domain.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = domain.CategoryAll
	}

	visible := h.service.Products(query, category)
	products := make([]ProductSummaryResponse, len(visible))
	for i, p := range visible {
		products[i] = toProductSummary(p)
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: products, Count: len(products)})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Product(chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	n, accepted, err := h.service.SubmitQuestion(r.Context(), chi.URLParam(r, "id"), req.Question)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := QuestionResponse{Accepted: accepted}
	if accepted {
		nr := toNotificationResponse(n)
		res.Notification = &nr
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ProductHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	n := h.service.Subscribe(r.Context(), req.Email)
	respondJSON(w, http.StatusOK, toNotificationResponse(n))
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_cart/storefront/internal/service"
)

type CartService interface {
	CreateSession(ctx context.Context) (string, error)
	EndSession(ctx context.Context, sessionID string) error
	Cart(ctx context.Context, sessionID string) (service.CartSnapshot, error)
	AddToCart(ctx context.Context, sessionID, productID string, qty int) (service.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (service.CartSnapshot, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (service.CartSnapshot, error)
	ClearCart(ctx context.Context, sessionID string) (service.CartSnapshot, error)
}

type CartHandler struct {
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.service.CreateSession(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, SessionResponse{SessionID: sessionID})
}

func (h *CartHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.EndSession(r.Context(), getSessionID(r.Context())); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Cart(r.Context(), getSessionID(r.Context()))
	h.respondCart(w, http.StatusOK, snap, err)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	snap, err := h.service.AddToCart(r.Context(), getSessionID(r.Context()), req.ProductID, req.Quantity.Int())
	h.respondCart(w, http.StatusOK, snap, err)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	snap, err := h.service.UpdateQuantity(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "id"), req.Quantity.Int())
	h.respondCart(w, http.StatusOK, snap, err)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.RemoveFromCart(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "id"))
	h.respondCart(w, http.StatusOK, snap, err)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.ClearCart(r.Context(), getSessionID(r.Context()))
	h.respondCart(w, http.StatusOK, snap, err)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, snap service.CartSnapshot, err error) {
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, status, toCartResponse(snap))
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fjod/go_cart/storefront/internal/checkout"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/service"
)

type CheckoutService interface {
	OpenCheckout(ctx context.Context, sessionID string) (service.CheckoutSnapshot, error)
	Checkout(ctx context.Context, sessionID string) (service.CheckoutSnapshot, error)
	CloseCheckout(ctx context.Context, sessionID string) error
	AdvanceCheckout(ctx context.Context, sessionID string) (service.CheckoutSnapshot, bool, error)
	BackCheckout(ctx context.Context, sessionID string) (service.CheckoutSnapshot, error)
	UpdateCheckoutForm(ctx context.Context, sessionID string, patch checkout.FormPatch) (service.CheckoutSnapshot, error)
	PlaceOrder(ctx context.Context, sessionID string) (domain.Notification, service.CartSnapshot, error)
}

type CheckoutHandler struct {
	service CheckoutService
}

func NewCheckoutHandler(service CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.OpenCheckout(r.Context(), getSessionID(r.Context()))
	h.respondCheckout(w, snap, err)
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Checkout(r.Context(), getSessionID(r.Context()))
	h.respondCheckout(w, snap, err)
}

func (h *CheckoutHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseCheckout(r.Context(), getSessionID(r.Context())); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Next answers 200 even when the step does not change; advanced tells the
// client whether it did.
func (h *CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	snap, advanced, err := h.service.AdvanceCheckout(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{
		Advanced: advanced,
		Checkout: toCheckoutResponse(snap),
	})
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.BackCheckout(r.Context(), getSessionID(r.Context()))
	h.respondCheckout(w, snap, err)
}

func (h *CheckoutHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req CheckoutFormPatchDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	patch := checkout.FormPatch{
		Email:      req.Email,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	}
	if req.Payment != nil {
		method, ok := domain.ParsePaymentMethod(*req.Payment)
		if !ok {
			respondError(w, http.StatusBadRequest, "invalid_payment", "payment must be card or paypal")
			return
		}
		patch.Payment = &method
	}

	snap, err := h.service.UpdateCheckoutForm(r.Context(), getSessionID(r.Context()), patch)
	h.respondCheckout(w, snap, err)
}

func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	n, cartSnap, err := h.service.PlaceOrder(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, PlaceOrderResponse{
		Notification: toNotificationResponse(n),
		Cart:         toCartResponse(cartSnap),
	})
}

func (h *CheckoutHandler) respondCheckout(w http.ResponseWriter, snap service.CheckoutSnapshot, err error) {
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCheckoutResponse(snap))
}

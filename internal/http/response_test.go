package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/session"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"session", session.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
		{"wrapped session", fmt.Errorf("get visitor: %w", session.ErrSessionNotFound), http.StatusNotFound, "session_not_found"},
		{"product", service.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
		{"no checkout", service.ErrNoCheckout, http.StatusConflict, "checkout_not_open"},
		{"not at payment", service.ErrNotAtPayment, http.StatusConflict, "not_at_payment"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.code, decode[ErrorResponse](t, rec).Code)
		})
	}
}

func TestHandleServiceError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, errors.New("sqlite: disk I/O error"))

	body := decode[ErrorResponse](t, rec)
	assert.NotContains(t, body.Error, "sqlite")
}

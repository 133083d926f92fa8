package checkout

import (
	"testing"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWithOneLine() domain.Cart {
	return cart.Add(domain.Cart{}, domain.Product{
		ID:    "h1",
		Name:  "Organic Chamomile Tea",
		Price: decimal.RequireFromString("8.50"),
	}, 1)
}

func TestOpen(t *testing.T) {
	s := Open()

	assert.Equal(t, domain.StepCart, s.Step)
	assert.Equal(t, domain.PaymentCard, s.Form.Payment)
	assert.Empty(t, s.Form.Email)
}

func TestAdvance_EmptyCartIsRefused(t *testing.T) {
	s, ok := Advance(Open(), domain.Cart{})

	assert.False(t, ok)
	assert.Equal(t, domain.StepCart, s.Step)
}

func TestAdvance_RetryAfterAddingLineSucceeds(t *testing.T) {
	s, ok := Advance(Open(), domain.Cart{})
	require.False(t, ok)

	s, ok = Advance(s, cartWithOneLine())

	assert.True(t, ok)
	assert.Equal(t, domain.StepDetails, s.Step)
}

func TestAdvance_DetailsToPaymentWithoutAnyFormData(t *testing.T) {
	s := domain.CheckoutSession{Step: domain.StepDetails}

	s, ok := Advance(s, cartWithOneLine())

	assert.True(t, ok)
	assert.Equal(t, domain.StepPayment, s.Step)
}

func TestAdvance_PaymentStepDoesNotAdvance(t *testing.T) {
	s := domain.CheckoutSession{Step: domain.StepPayment}

	s, ok := Advance(s, cartWithOneLine())

	assert.False(t, ok)
	assert.Equal(t, domain.StepPayment, s.Step)
}

func TestBack(t *testing.T) {
	form := domain.CheckoutForm{Email: "a@b.c", Payment: domain.PaymentPayPal}

	s := Back(domain.CheckoutSession{Step: domain.StepPayment, Form: form})
	assert.Equal(t, domain.StepDetails, s.Step)
	assert.Equal(t, form, s.Form)

	s = Back(s)
	assert.Equal(t, domain.StepCart, s.Step)

	s = Back(s)
	assert.Equal(t, domain.StepCart, s.Step)
}

func TestCanAdvance(t *testing.T) {
	full := cartWithOneLine()

	assert.False(t, CanAdvance(Open(), domain.Cart{}))
	assert.True(t, CanAdvance(Open(), full))
	assert.True(t, CanAdvance(domain.CheckoutSession{Step: domain.StepDetails}, domain.Cart{}))
	assert.False(t, CanAdvance(domain.CheckoutSession{Step: domain.StepPayment}, full))
}

func TestPlaceOrder_ClearsCartAndNotifies(t *testing.T) {
	s := domain.CheckoutSession{
		Step: domain.StepPayment,
		Form: domain.CheckoutForm{Name: "Sam", Payment: domain.PaymentPayPal},
	}

	s, c, n, ok := PlaceOrder(s, cartWithOneLine())

	require.True(t, ok)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, domain.StepPlaced, s.Step)
	assert.True(t, s.Step.IsTerminal())
	assert.Equal(t, domain.NotificationOrderPlaced, n.Kind)
	assert.Equal(t, OrderPlacedMessage, n.Message)
}

func TestPlaceOrder_OnlyFromPaymentStep(t *testing.T) {
	full := cartWithOneLine()

	for _, step := range []domain.CheckoutStep{domain.StepCart, domain.StepDetails} {
		s, c, _, ok := PlaceOrder(domain.CheckoutSession{Step: step}, full)

		assert.False(t, ok, step.String())
		assert.Equal(t, step, s.Step)
		assert.Equal(t, full, c)
	}
}

func TestUpdateForm(t *testing.T) {
	email := "sam@example.com"
	city := "Lisbon"
	paypal := domain.PaymentPayPal

	s := UpdateForm(Open(), FormPatch{Email: &email, City: &city})
	s = UpdateForm(s, FormPatch{Payment: &paypal})

	assert.Equal(t, email, s.Form.Email)
	assert.Equal(t, city, s.Form.City)
	assert.Equal(t, domain.PaymentPayPal, s.Form.Payment)
	assert.Empty(t, s.Form.Name)
	assert.Equal(t, domain.StepCart, s.Step)
}

func TestUpdateForm_EmptyValuesAreAccepted(t *testing.T) {
	empty := ""
	s := UpdateForm(domain.CheckoutSession{
		Step: domain.StepDetails,
		Form: domain.CheckoutForm{Email: "old@example.com"},
	}, FormPatch{Email: &empty})

	assert.Empty(t, s.Form.Email)

	s, ok := Advance(s, domain.Cart{})
	assert.True(t, ok)
	assert.Equal(t, domain.StepPayment, s.Step)
}

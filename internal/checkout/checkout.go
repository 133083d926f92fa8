package checkout

import (
	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
)

const OrderPlacedMessage = "Order placed successfully!"

// Open starts a session at the cart review step with card payment preselected.
func Open() domain.CheckoutSession {
	return domain.CheckoutSession{
		Step: domain.StepCart,
		Form: domain.CheckoutForm{Payment: domain.PaymentCard},
	}
}

// CanAdvance reports whether Advance would move the session forward.
// Leaving the cart step needs at least one line; the details step is never
// validated.
func CanAdvance(s domain.CheckoutSession, c domain.Cart) bool {
	switch s.Step {
	case domain.StepCart:
		return !c.IsEmpty()
	case domain.StepDetails:
		return true
	default:
		return false
	}
}

// Advance moves one step forward. A refused transition returns the session
// unchanged and false. The payment step only exits through PlaceOrder.
func Advance(s domain.CheckoutSession, c domain.Cart) (domain.CheckoutSession, bool) {
	if !CanAdvance(s, c) {
		return s, false
	}
	s.Step++
	return s, true
}

// Back moves one step backwards; at the cart step it does nothing.
func Back(s domain.CheckoutSession) domain.CheckoutSession {
	switch s.Step {
	case domain.StepDetails, domain.StepPayment:
		s.Step--
	}
	return s
}

// PlaceOrder completes a session sitting at the payment step. It returns the
// emptied cart, the confirmation to show and the terminal session. There is
// no payment gateway, so placement cannot fail once at the payment step.
func PlaceOrder(s domain.CheckoutSession, c domain.Cart) (domain.CheckoutSession, domain.Cart, domain.Notification, bool) {
	if s.Step != domain.StepPayment {
		return s, c, domain.Notification{}, false
	}

	s.Step = domain.StepPlaced
	return s, cart.Clear(c), domain.Notification{
		Kind:    domain.NotificationOrderPlaced,
		Message: OrderPlacedMessage,
	}, true
}

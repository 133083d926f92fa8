package domain

// CheckoutStep is the position of a checkout session in its linear flow.
type CheckoutStep int

const (
	StepCart    CheckoutStep = 1
	StepDetails CheckoutStep = 2
	StepPayment CheckoutStep = 3
	// StepPlaced is terminal; a session in this step is discarded by its owner.
	StepPlaced CheckoutStep = 4
)

// String representation (for logging)
func (s CheckoutStep) String() string {
	switch s {
	case StepCart:
		return "cart"
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

func (s CheckoutStep) IsTerminal() bool {
	return s == StepPlaced
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
)

// ParsePaymentMethod accepts only the methods offered at the payment step.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCard, PaymentPayPal:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// CheckoutForm holds shipping and payment details. None of the fields are
// validated before the order is placed.
type CheckoutForm struct {
	Email      string
	Name       string
	Address    string
	City       string
	PostalCode string
	Payment    PaymentMethod
}

type CheckoutSession struct {
	Step CheckoutStep
	Form CheckoutForm
}

package checkout

import "github.com/fjod/go_cart/storefront/internal/domain"

// FormPatch carries the fields a shopper changed; nil fields are left alone.
type FormPatch struct {
	Email      *string
	Name       *string
	Address    *string
	City       *string
	PostalCode *string
	Payment    *domain.PaymentMethod
}

// UpdateForm applies patch at any step without validating the values.
func UpdateForm(s domain.CheckoutSession, patch FormPatch) domain.CheckoutSession {
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&s.Form.Email, patch.Email)
	apply(&s.Form.Name, patch.Name)
	apply(&s.Form.Address, patch.Address)
	apply(&s.Form.City, patch.City)
	apply(&s.Form.PostalCode, patch.PostalCode)
	if patch.Payment != nil {
		s.Form.Payment = *patch.Payment
	}
	return s
}

package cart

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// FreeShippingThreshold must be strictly exceeded for free shipping.
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.RequireFromString("4.99")
)

// ComputeTotals derives subtotal, shipping and total. Amounts are exact;
// rounding belongs to whoever renders them.
func ComputeTotals(c domain.Cart) domain.Totals {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := FlatShippingFee
	if subtotal.IsZero() || subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return domain.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

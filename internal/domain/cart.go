package domain

import "github.com/shopspring/decimal"

// CartLine references a product by ID; name and price are captured when the
// line is first added.
type CartLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// LineTotal is price times quantity, unrounded.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps lines in the order products were first added. Values are never
// mutated in place; cart operations return a new Cart.
type Cart struct {
	Lines []CartLine
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for productID, if present.
func (c Cart) Line(productID string) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

// Totals are derived on demand from a Cart and never stored.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// FreeShipping reports whether the shipping fee was waived.
func (t Totals) FreeShipping() bool {
	return t.Shipping.IsZero()
}

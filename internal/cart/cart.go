package cart

import (
	"github.com/fjod/go_cart/storefront/internal/domain"
)

// Add returns a cart with qty more of product. An existing line keeps its
// position and captured price; otherwise a new line is appended. qty is
// expected to be at least 1, see ClampQuantity. A merged line saturates at
// MaxQuantity.
func Add(c domain.Cart, product domain.Product, qty int) domain.Cart {
	lines := make([]domain.CartLine, 0, len(c.Lines)+1)
	found := false
	for _, l := range c.Lines {
		if l.ProductID == product.ID {
			l.Quantity = addQuantity(l.Quantity, qty)
			found = true
		}
		lines = append(lines, l)
	}
	if !found {
		lines = append(lines, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  ClampQuantity(qty),
		})
	}
	return domain.Cart{Lines: lines}
}

// UpdateQuantity sets the line for productID to max(1, qty). It never removes
// a line; unknown IDs leave the cart as it was.
func UpdateQuantity(c domain.Cart, productID string, qty int) domain.Cart {
	lines := make([]domain.CartLine, len(c.Lines))
	for i, l := range c.Lines {
		if l.ProductID == productID {
			l.Quantity = ClampQuantity(qty)
		}
		lines[i] = l
	}
	return domain.Cart{Lines: lines}
}

// Remove drops the line for productID if present.
func Remove(c domain.Cart, productID string) domain.Cart {
	lines := make([]domain.CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ProductID != productID {
			lines = append(lines, l)
		}
	}
	return domain.Cart{Lines: lines}
}

func Clear(domain.Cart) domain.Cart {
	return domain.Cart{}
}

// ItemCount is the sum of quantities across all lines.
func ItemCount(c domain.Cart) int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func addQuantity(have, qty int) int {
	if qty > MaxQuantity-have {
		return MaxQuantity
	}
	return ClampQuantity(have + qty)
}

package cart

import (
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s", expected, actual.String())
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(domain.Cart{})

	assertMoney(t, "0", totals.Subtotal)
	assertMoney(t, "0", totals.Shipping)
	assertMoney(t, "0", totals.Total)
	assert.True(t, totals.FreeShipping())
}

func TestComputeTotals_ExactlyFiftyPaysShipping(t *testing.T) {
	c := Add(domain.Cart{}, product("x", "25.00"), 2)

	totals := ComputeTotals(c)

	assertMoney(t, "50.00", totals.Subtotal)
	assertMoney(t, "4.99", totals.Shipping)
	assertMoney(t, "54.99", totals.Total)
}

func TestComputeTotals_JustOverFiftyShipsFree(t *testing.T) {
	c := Add(domain.Cart{}, product("x", "50.01"), 1)

	totals := ComputeTotals(c)

	assertMoney(t, "50.01", totals.Subtotal)
	assertMoney(t, "0", totals.Shipping)
	assertMoney(t, "50.01", totals.Total)
}

func TestComputeTotals_MixedCartOverThreshold(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)
	c = Add(c, product("s1", "24.00"), 2)

	totals := ComputeTotals(c)

	assertMoney(t, "62.99", totals.Subtotal)
	assertMoney(t, "0", totals.Shipping)
	assertMoney(t, "62.99", totals.Total)
}

func TestComputeTotals_SmallCartAddsFlatFee(t *testing.T) {
	c := Add(domain.Cart{}, product("h1", "8.50"), 1)

	totals := ComputeTotals(c)

	assertMoney(t, "8.50", totals.Subtotal)
	assertMoney(t, "4.99", totals.Shipping)
	assertMoney(t, "13.49", totals.Total)
	assert.False(t, totals.FreeShipping())
}

func TestComputeTotals_NoDriftAcrossManyLines(t *testing.T) {
	c := domain.Cart{}
	for i := 0; i < 10; i++ {
		c = Add(c, product(string(rune('a'+i)), "0.10"), 1)
	}

	totals := ComputeTotals(c)

	assertMoney(t, "1.00", totals.Subtotal)
	assertMoney(t, "5.99", totals.Total)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "13.49", FormatMoney(decimal.RequireFromString("13.49")))
	assert.Equal(t, "8.50", FormatMoney(decimal.RequireFromString("8.5")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
}

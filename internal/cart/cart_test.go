package cart

import (
	"math"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.RequireFromString(price),
	}
}

func TestAdd_NewProductAppendsLine(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)
	c = Add(c, product("s1", "24.00"), 2)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "v1", c.Lines[0].ProductID)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, "s1", c.Lines[1].ProductID)
	assert.Equal(t, 2, c.Lines[1].Quantity)
	assert.Equal(t, "Product s1", c.Lines[1].Name)
}

func TestAdd_SameProductTwiceMergesQuantities(t *testing.T) {
	p := product("v1", "14.99")

	c := Add(domain.Cart{}, p, 3)
	c = Add(c, p, 4)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 7, c.Lines[0].Quantity)
}

func TestAdd_MergeSaturatesAtMaxQuantity(t *testing.T) {
	p := product("v1", "14.99")

	c := Add(domain.Cart{}, p, 1)
	c = Add(c, p, NormalizeQuantity("9223372036854775807"))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, MaxQuantity, c.Lines[0].Quantity)

	c = Add(c, p, MaxQuantity)
	assert.Equal(t, MaxQuantity, c.Lines[0].Quantity)
	assert.True(t, ComputeTotals(c).Subtotal.IsPositive())
}

func TestAdd_NewLineIsClamped(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), math.MaxInt)

	assert.Equal(t, MaxQuantity, c.Lines[0].Quantity)
}

func TestAdd_KeepsInsertionOrderOnMerge(t *testing.T) {
	c := Add(domain.Cart{}, product("a", "1"), 1)
	c = Add(c, product("b", "1"), 1)
	c = Add(c, product("a", "1"), 1)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "a", c.Lines[0].ProductID)
	assert.Equal(t, "b", c.Lines[1].ProductID)
}

func TestAdd_KeepsPriceCapturedAtFirstAdd(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)
	c = Add(c, product("v1", "99.00"), 1)

	assert.True(t, c.Lines[0].Price.Equal(decimal.RequireFromString("14.99")))
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	original := Add(domain.Cart{}, product("v1", "14.99"), 1)

	_ = Add(original, product("v1", "14.99"), 5)
	_ = Add(original, product("s1", "24.00"), 1)

	require.Len(t, original.Lines, 1)
	assert.Equal(t, 1, original.Lines[0].Quantity)
}

func TestUpdateQuantity_SetsValue(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)

	c = UpdateQuantity(c, "v1", 6)

	assert.Equal(t, 6, c.Lines[0].Quantity)
}

func TestUpdateQuantity_ClampsToOne(t *testing.T) {
	for _, n := range []int{0, -1, -250} {
		c := Add(domain.Cart{}, product("v1", "14.99"), 4)

		c = UpdateQuantity(c, "v1", n)

		require.Len(t, c.Lines, 1, "qty %d must not remove the line", n)
		assert.Equal(t, 1, c.Lines[0].Quantity, "qty %d", n)
	}
}

func TestUpdateQuantity_CapsAtMaxQuantity(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)
	c = UpdateQuantity(c, "v1", math.MaxInt)

	assert.Equal(t, MaxQuantity, c.Lines[0].Quantity)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 2)

	updated := UpdateQuantity(c, "missing", 9)

	assert.Equal(t, c, updated)
}

func TestUpdateQuantity_DoesNotMutateInput(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 2)

	_ = UpdateQuantity(c, "v1", 9)

	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)
	c = Add(c, product("s1", "24.00"), 1)

	c = Remove(c, "v1")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "s1", c.Lines[0].ProductID)
}

func TestRemove_UnknownProductIsNoop(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)

	assert.Equal(t, c, Remove(c, "missing"))
}

func TestRemoveThenAdd_StartsFreshLine(t *testing.T) {
	p := product("v1", "14.99")
	c := Add(domain.Cart{}, p, 5)

	c = Remove(c, p.ID)
	c = Add(c, p, 2)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestClear(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 1)

	c = Clear(c)

	assert.True(t, c.IsEmpty())
}

func TestItemCount(t *testing.T) {
	c := Add(domain.Cart{}, product("v1", "14.99"), 2)
	c = Add(c, product("s1", "24.00"), 3)

	assert.Equal(t, 5, ItemCount(c))
	assert.Equal(t, 0, ItemCount(domain.Cart{}))
}

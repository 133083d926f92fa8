package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceMock struct {
	products []domain.Product
	err      error
}

func (s sourceMock) GetAllProducts(context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func TestFixture_DecodesOriginalProducts(t *testing.T) {
	products := fixtureProducts(t)

	vitaminC := products[0]
	assert.Equal(t, "v1", vitaminC.ID)
	assert.Equal(t, domain.CategoryVitamins, vitaminC.Category)
	assert.True(t, vitaminC.Price.Equal(decimal.RequireFromString("14.99")))
	assert.Equal(t, 4.6, vitaminC.Rating)
	require.Len(t, vitaminC.Reviews, 2)
	assert.Equal(t, "Priya", vitaminC.Reviews[1].User)
	assert.Equal(t, 4, vitaminC.Reviews[1].Rating)
	assert.Equal(t, []string{"/images/vitamin-c.jpg"}, vitaminC.Images)
	assert.Len(t, vitaminC.Benefits, 3)

	assert.Equal(t, "100% Organic Chamomile Blossoms", products[2].Ingredients)
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), Fixture{})

	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	p, ok := c.Product("s1")
	assert.True(t, ok)
	assert.Equal(t, "Omega-3 Fish Oil", p.Name)
	assert.Len(t, c.Visible("", domain.CategorySupplements), 1)
}

func TestLoad_SourceError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Load(context.Background(), sourceMock{err: boom})

	assert.ErrorIs(t, err, boom)
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(context.Background(), sourceMock{})

	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := New(fixtureProducts(t))

	all := c.All()
	all[0].Name = "changed"

	p, _ := c.Product("v1")
	assert.Equal(t, "Vitamin C 1000mg", p.Name)
}

func TestDecodeYAML_Malformed(t *testing.T) {
	_, err := DecodeYAML([]byte("products: ["))

	assert.Error(t, err)
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

var ErrEmptyCatalog = errors.New("catalog has no products")

// ProductSource supplies the catalog once at startup.
type ProductSource interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
}

// Catalog is the read-only product list shared by every visitor.
type Catalog struct {
	products []domain.Product
}

func New(products []domain.Product) *Catalog {
	return &Catalog{products: append([]domain.Product(nil), products...)}
}

// Load reads every product from src.
func Load(ctx context.Context, src ProductSource) (*Catalog, error) {
	products, err := src.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(products), nil
}

// All returns a copy of every product in catalog order.
func (c *Catalog) All() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c *Catalog) Visible(query string, category domain.Category) []domain.Product {
	return VisibleProducts(c.products, query, category)
}

func (c *Catalog) Product(id string) (domain.Product, bool) {
	return Find(c.products, id)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

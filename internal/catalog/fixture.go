package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var fixtureYAML []byte

type fixtureFile struct {
	Products []domain.Product `yaml:"products"`
}

// Fixture is the built-in catalog shipped with the binary.
type Fixture struct{}

func (Fixture) GetAllProducts(context.Context) ([]domain.Product, error) {
	return DecodeYAML(fixtureYAML)
}

// DecodeYAML parses a catalog document with a top-level products list.
func DecodeYAML(data []byte) ([]domain.Product, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}
	return f.Products, nil
}

package domain

import "github.com/shopspring/decimal"

// Category groups products in the storefront navigation.
type Category string

const (
	// CategoryAll is the sentinel that places no constraint on a product's category.
	CategoryAll         Category = "All"
	CategoryVitamins    Category = "Vitamins"
	CategorySupplements Category = "Supplements"
	CategoryHerbalTeas  Category = "Herbal Teas"
	CategoryMinerals    Category = "Minerals"
)

// Categories returns the navigation order, sentinel first.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryVitamins,
		CategorySupplements,
		CategoryHerbalTeas,
		CategoryMinerals,
	}
}

func (c Category) String() string {
	return string(c)
}

type Review struct {
	ID     string `yaml:"id"`
	User   string `yaml:"user"`
	Rating int    `yaml:"rating"`
	Text   string `yaml:"text"`
}

// Product is immutable once the catalog is loaded.
type Product struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Category    Category        `yaml:"category"`
	Price       decimal.Decimal `yaml:"price"`
	Images      []string        `yaml:"images"`
	Rating      float64         `yaml:"rating"`
	Reviews     []Review        `yaml:"reviews"`
	Description string          `yaml:"description"`
	Benefits    []string        `yaml:"benefits"`
	Ingredients string          `yaml:"ingredients"`
	Usage       string          `yaml:"usage"`
}

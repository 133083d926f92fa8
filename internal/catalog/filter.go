package catalog

import (
	"strings"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// VisibleProducts returns the products matching category and the free-text
// query, in catalog order. A blank query matches everything; otherwise the
// lower-cased query must occur in the name, the description or the benefits
// joined by spaces. Unknown categories simply match nothing.
func VisibleProducts(all []domain.Product, query string, category domain.Category) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	visible := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if category != domain.CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matchesQuery(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(strings.Join(p.Benefits, " ")), q)
}

// Find looks a product up by ID.
func Find(all []domain.Product, id string) (domain.Product, bool) {
	for _, p := range all {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

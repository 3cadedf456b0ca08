package catalog

import (
	"strings"

	"floraform.ca/storefront/pkg/models"
)

// AllCategories is the wildcard category that matches every product.
const AllCategories = "All"

// Filter returns the products visible for a category and free-text search
// term. A product passes when the category is "All" or matches exactly,
// and the term is empty or a case-insensitive substring of the name or
// description. Catalog order is preserved; Filter is pure and safe to call
// on every keystroke.
func Filter(products []models.Product, category, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != AllCategories && category != "" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

package catalog

import "julianmorley.ca/con-plar/shopvibe/pkg/models"

// Filter returns the products whose category equals selection, in their
// original order. CategoryAll returns every product. An unrecognized
// selection matches nothing and yields an empty slice.
func Filter(products []models.Product, selection models.Category) []models.Product {
	if selection == models.CategoryAll {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == selection {
			out = append(out, p)
		}
	}
	return out
}

// Find looks a product up by id.
func Find(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CountByCategory tallies products per category; CategoryAll holds the total.
func CountByCategory(products []models.Product) map[models.Category]int {
	counts := make(map[models.Category]int, len(models.Categories()))
	counts[models.CategoryAll] = len(products)
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}

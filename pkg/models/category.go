package models

// Category classifies a product for filtering.
type Category string

const (
	CategoryAll         Category = "All" // no filter
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryBeauty      Category = "Beauty"
	CategoryPhotography Category = "Photography"
	CategorySports      Category = "Sports"
)

var categories = []Category{
	CategoryAll,
	CategoryElectronics,
	CategoryClothing,
	CategoryAccessories,
	CategoryBeauty,
	CategoryPhotography,
	CategorySports,
}

// Categories returns the fixed category set in display order, starting with All.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a raw selector onto the category set. Matching is exact.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsKnown()
}

func (c Category) IsKnown() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

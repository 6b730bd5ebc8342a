package catalog

import (
	"julianmorley.ca/con-plar/shopvibe/pkg/models"
	"julianmorley.ca/con-plar/shopvibe/pkg/money"
)

const placeholderImage = "/api/placeholder/400/400"

// SampleProducts returns the storefront's sample catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Price:         money.MustParse("299"),
			OriginalPrice: money.MustParse("399"),
			Image:         placeholderImage,
			Category:      models.CategoryElectronics,
			Ratings:       models.Ratings{Average: 4.8, Count: 156},
			Badge:         "Best Seller",
			InStock:       true,
		},
		{
			ID:       "2",
			Name:     "Minimalist Leather Wallet",
			Price:    money.MustParse("89"),
			Image:    placeholderImage,
			Category: models.CategoryAccessories,
			Ratings:  models.Ratings{Average: 4.6, Count: 89},
			IsNew:    true,
			InStock:  true,
		},
		{
			ID:            "3",
			Name:          "Smart Fitness Watch",
			Price:         money.MustParse("249"),
			OriginalPrice: money.MustParse("329"),
			Image:         placeholderImage,
			Category:      models.CategoryElectronics,
			Ratings:       models.Ratings{Average: 4.7, Count: 203},
			Badge:         "Featured",
			InStock:       true,
		},
		{
			ID:       "4",
			Name:     "Organic Cotton T-Shirt",
			Price:    money.MustParse("35"),
			Image:    placeholderImage,
			Category: models.CategoryClothing,
			Ratings:  models.Ratings{Average: 4.4, Count: 67},
			IsNew:    true,
			InStock:  true,
		},
		{
			ID:            "5",
			Name:          "Professional Camera Lens",
			Price:         money.MustParse("599"),
			OriginalPrice: money.MustParse("799"),
			Image:         placeholderImage,
			Category:      models.CategoryPhotography,
			Ratings:       models.Ratings{Average: 4.9, Count: 92},
			Badge:         "Pro Choice",
			InStock:       false,
		},
		{
			ID:       "6",
			Name:     "Luxury Skincare Set",
			Price:    money.MustParse("199"),
			Image:    placeholderImage,
			Category: models.CategoryBeauty,
			Ratings:  models.Ratings{Average: 4.5, Count: 134},
			IsNew:    true,
			InStock:  true,
		},
	}
}

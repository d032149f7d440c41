package catalog

import "oceankicks/pkg/domain"

// storefrontProducts returns a fresh copy of the embedded catalog. Image keys
// resolve through the blob store mounted under /assets/.
func storefrontProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Wave Runner X",
			Brand:       "OceanKicks",
			Description: "Breathable mesh upper and cushioned midsole inspired by ocean flow. Ideal for everyday runs.",
			Category:    "Running",
			Price:       129.0,
			Currency:    "USD",
			Sizes:       []string{"40", "41", "42", "43", "44"},
			Colors:      []string{"Navy", "White", "Black"},
			StockByVariant: map[string]int{
				"40-Navy": 6, "41-Navy": 10, "42-Navy": 8, "43-Navy": 5, "44-Navy": 4,
				"40-White": 7, "41-White": 5, "42-White": 0, "43-White": 2, "44-White": 1,
				"40-Black": 9, "41-Black": 3, "42-Black": 2, "43-Black": 0, "44-Black": 4,
			},
			Images: []string{"placeholder-1.png", "placeholder-2.png", "placeholder-3.png"},
			Tags:   []string{"New"},
		},
		{
			ID:          "2",
			Name:        "Harbor Court",
			Brand:       "OceanKicks",
			Description: "Clean court silhouette with coastal tones. Casual comfort for daily wear.",
			Category:    "Casual",
			Price:       89.0,
			Currency:    "USD",
			Sizes:       []string{"39", "41", "42"},
			Colors:      []string{"White", "Tan"},
			StockByVariant: map[string]int{
				"39-White": 12, "41-White": 0, "42-White": 4,
				"39-Tan": 6, "41-Tan": 2, "42-Tan": 3,
			},
			Images: []string{"placeholder-2.png", "placeholder-3.png"},
			Tags:   []string{"Hot"},
		},
		{
			ID:          "3",
			Name:        "Aqua Sprint",
			Brand:       "OceanKicks",
			Description: "Lightweight sprint shoe with responsive cushioning and water-themed overlays.",
			Category:    "Running",
			Price:       149.0,
			Currency:    "USD",
			Sizes:       []string{"42", "44", "45"},
			Colors:      []string{"Teal", "Gray"},
			StockByVariant: map[string]int{
				"42-Teal": 5, "44-Teal": 4, "45-Teal": 2,
				"42-Gray": 0, "44-Gray": 6, "45-Gray": 3,
			},
			Images: []string{"placeholder-1.png", "placeholder-4.png", "placeholder-2.png", "placeholder-3.png"},
			Tags:   []string{},
		},
		{
			ID:          "4",
			Name:        "Coastline Pro",
			Brand:       "OceanKicks",
			Description: "Performance basketball shoe with pro-level grip and ankle support.",
			Category:    "Basketball",
			Price:       199.0,
			Currency:    "USD",
			Sizes:       []string{"44", "45", "46"},
			Colors:      []string{"Black", "Gold"},
			StockByVariant: map[string]int{
				"44-Black": 3, "45-Black": 0, "46-Black": 2,
				"44-Gold": 2, "45-Gold": 1, "46-Gold": 0,
			},
			Images: []string{"placeholder-2.png"},
			Tags:   []string{"Pro"},
		},
		{
			ID:          "5",
			Name:        "Breeze Lite",
			Brand:       "OceanKicks",
			Description: "Ultra-light casual sneaker with airy knit upper and flexible sole.",
			Category:    "Casual",
			Price:       79.0,
			Currency:    "USD",
			Sizes:       []string{"40", "41"},
			Colors:      []string{"White", "Blue"},
			StockByVariant: map[string]int{
				"40-White": 9, "41-White": 1,
				"40-Blue": 5, "41-Blue": 2,
			},
			Images: []string{"placeholder-3.png", "placeholder-1.png"},
			Tags:   []string{},
		},
		{
			ID:          "6",
			Name:        "Marina Glide",
			Brand:       "OceanKicks",
			Description: "Training shoe built for stability and support with smooth transitions.",
			Category:    "Training",
			Price:       159.0,
			Currency:    "USD",
			Sizes:       []string{"41", "42", "43"},
			Colors:      []string{"Blue", "Gray"},
			StockByVariant: map[string]int{
				"41-Blue": 4, "42-Blue": 7, "43-Blue": 0,
				"41-Gray": 3, "42-Gray": 5, "43-Gray": 2,
			},
			Images: []string{"placeholder-4.png", "placeholder-2.png", "placeholder-1.png"},
			Tags:   []string{},
		},
		{
			ID:          "7",
			Name:        "Tide High",
			Brand:       "OceanKicks",
			Description: "High-top court design for lateral support and bold street look.",
			Category:    "Basketball",
			Price:       119.0,
			Currency:    "USD",
			Sizes:       []string{"43", "44"},
			Colors:      []string{"Black", "White"},
			StockByVariant: map[string]int{
				"43-Black": 5, "44-Black": 5,
				"43-White": 0, "44-White": 2,
			},
			Images: []string{"placeholder-1.png", "placeholder-3.png"},
			Tags:   []string{},
		},
		{
			ID:          "8",
			Name:        "Pier Street",
			Brand:       "OceanKicks",
			Description: "Casual low with coastal palette, perfect for weekend strolls.",
			Category:    "Casual",
			Price:       99.0,
			Currency:    "USD",
			Sizes:       []string{"42", "43"},
			Colors:      []string{"White", "Green"},
			StockByVariant: map[string]int{
				"42-White": 7, "43-White": 3,
				"42-Green": 4, "43-Green": 1,
			},
			Images: []string{"placeholder-2.png", "placeholder-4.png", "placeholder-3.png"},
			Tags:   []string{},
		},
	}
}

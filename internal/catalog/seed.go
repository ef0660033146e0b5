package catalog

import "github.com/sivanaveen080/biryani-for-lunch/internal/cart"

// Seed is the storefront's menu. Prices are whole rupees.
func Seed() []Product {
	return []Product{
		{Name: "Chicken Biryani", Price: 160, Category: "biryani", Bestseller: true},
		{Name: "Mutton Biryani", Price: 220, Category: "biryani", Bestseller: true},
		{Name: "Veg Biryani", Price: 120, Category: "biryani"},
		{Name: "Egg Biryani", Price: 130, Category: "biryani"},
		{Name: "Veg Noodles", Price: 90, Category: "noodles"},
		{Name: "Chicken Noodles", Price: 120, Category: "noodles", Bestseller: true},
		{Name: "Veg Fried Rice", Price: 90, Category: "rice"},
		{Name: "Chicken Fried Rice", Price: 120, Category: "rice"},
		{Name: "Samosa", Price: 15, Category: "snacks"},
		{Name: "Egg Puff", Price: 25, Category: "snacks"},
		{
			Name:     "Chicken 65",
			Price:    120,
			Category: "starters",
			Sizes: []cart.SizeOption{
				{Label: "half", ItemName: "Chicken 65 (Half)", UnitPrice: 120},
				{Label: "full", ItemName: "Chicken 65 (Full)", UnitPrice: 220},
			},
		},
	}
}

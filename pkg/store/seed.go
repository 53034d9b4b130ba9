package store

import (
	"context"
	"fmt"

	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/utils"
)

func floatPtr(f float64) *float64 { return &f }

// Seed fills an empty store with a handful of demo categories and products
// so the storefront has something to show right after init.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.Categories(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	type seedProduct struct {
		name     string
		price    float64
		sold     *float64
		quantity int
	}
	seedData := map[string][]seedProduct{
		"Shoes": {
			{name: "Red Shoes", price: 59.99, sold: floatPtr(44.99), quantity: 24},
			{name: "Trail Runners", price: 89.00, quantity: 8},
		},
		"Bags": {
			{name: "Canvas Tote", price: 24.50, quantity: 40},
			{name: "Leather Satchel", price: 129.00, sold: floatPtr(99.00), quantity: 5},
		},
		"Accessories": {
			{name: "Wool Scarf", price: 19.99, quantity: 0},
		},
	}

	for categoryName, items := range seedData {
		category, err := s.CreateCategory(ctx, models.Category{Name: categoryName})
		if err != nil {
			return fmt.Errorf("seed category %s: %w", categoryName, err)
		}
		for _, item := range items {
			_, err := s.CreateProduct(ctx, models.Product{
				Name:          item.name,
				Price:         item.price,
				SoldPrice:     item.sold,
				TotalQuantity: item.quantity,
				Slug:          utils.Slugify(item.name),
				CategoryID:    category.ID,
			})
			if err != nil {
				return fmt.Errorf("seed product %s: %w", item.name, err)
			}
		}
	}

	return nil
}

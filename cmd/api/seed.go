package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/catalog/domain/models"
)

// seedDemoData loads a small catalog for local development. Enabled with
// SEED_DEMO_DATA=true; refused in production by config validation.
func seedDemoData(ctx context.Context, a *app.Application) error {
	seed := []struct {
		name, sku, category string
		quantity            int
		priceRaw            float64
		priceCooked         float64
		description         string
	}{
		{"Basmati Rice", "RICE-001", "grains", 40, 2.50, 4.00, "Long grain aromatic rice"},
		{"Black Beans", "BEAN-001", "legumes", 25, 1.80, 3.20, "Dried black turtle beans"},
		{"Red Lentils", "LENT-001", "legumes", 8, 2.10, 3.50, "Split red lentils"},
		{"Chicken Breast", "CHKN-001", "meat", 12, 6.90, 9.50, "Skinless chicken breast"},
		{"Chickpeas", "CHCK-001", "legumes", 0, 1.60, 2.90, "Dried kabuli chickpeas"},
	}

	for _, s := range seed {
		sku, err := models.NewSKU(s.sku)
		if err != nil {
			return fmt.Errorf("seed sku %q: %w", s.sku, err)
		}
		p, err := models.NewProduct(s.name, sku, s.category, s.quantity,
			decimal.NewFromFloat(s.priceRaw), decimal.NewFromFloat(s.priceCooked), s.description)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", s.name, err)
		}
		if err := a.Products.Save(ctx, p); err != nil {
			return fmt.Errorf("save seed product %q: %w", s.name, err)
		}
	}
	return nil
}

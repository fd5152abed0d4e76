package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the core aggregate for the catalog bounded context.
//
// Quantity is the on-hand stock: units not committed to any pending order.
// Both product states ("raw" and "cooked") draw from this single stock pool;
// only the prices differ per state.
type Product struct {
	ID          uuid.UUID
	Name        string
	SKU         SKU
	Category    string
	Quantity    int
	PriceRaw    decimal.Decimal
	PriceCooked decimal.Decimal
	Description string
}

// NewProduct constructs a valid Product aggregate with a generated ID.
func NewProduct(name string, sku SKU, category string, quantity int, priceRaw, priceCooked decimal.Decimal, description string) (*Product, error) {
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		SKU:         sku,
		Category:    category,
		Quantity:    quantity,
		PriceRaw:    priceRaw,
		PriceCooked: priceCooked,
		Description: description,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product quantity must not be negative")
	}
	if !p.PriceRaw.IsPositive() {
		return fmt.Errorf("raw price must be greater than zero")
	}
	if !p.PriceCooked.IsPositive() {
		return fmt.Errorf("cooked price must be greater than zero")
	}
	return nil
}

// PriceFor returns the unit price for the given product state.
func (p *Product) PriceFor(state ProductState) decimal.Decimal {
	if state == StateCooked {
		return p.PriceCooked
	}
	return p.PriceRaw
}

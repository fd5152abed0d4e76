package models

// StockStatus classifies a product's on-hand quantity for reporting.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// DefaultLowStockThreshold is the quantity at or below which a product (with
// stock remaining) counts as low stock.
const DefaultLowStockThreshold = 10

// StatusFor classifies quantity against the given low-stock threshold.
func StatusFor(quantity, threshold int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

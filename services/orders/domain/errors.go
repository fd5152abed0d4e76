package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for the orders domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotEditable indicates a mutation was attempted on an order
	// whose status no longer allows it.
	ErrOrderNotEditable = errors.New("order is not editable")

	// ErrInvalidOrder indicates the order data violates domain constraints.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInsufficientStock indicates a reservation was rejected because one
	// or more products lack the required quantity. The concrete error is a
	// *StockError carrying per-product detail.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Shortage describes one product that could not cover the requested quantity.
// Requested is the total across both product states; Available is what the
// reservation could have drawn on (on-hand, plus the order's own previous
// reservation when editing).
type Shortage struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Requested   int       `json:"requested"`
	Available   int       `json:"available"`
}

// StockError aggregates every shortage found while validating a reservation.
// Validation is all-or-nothing: no stock moves when this error is returned.
type StockError struct {
	Shortages []Shortage
}

func (e *StockError) Error() string {
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = fmt.Sprintf("%s: requested %d, available %d", s.ProductName, s.Requested, s.Available)
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrInsufficientStock) work on wrapped values.
func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

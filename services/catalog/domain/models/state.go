package models

import "fmt"

// ProductState distinguishes the two fulfillment variants of a product.
// Both variants share the product's stock pool; they differ only in price.
type ProductState string

const (
	StateRaw    ProductState = "raw"
	StateCooked ProductState = "cooked"
)

// ParseProductState validates a state string from external input.
func ParseProductState(s string) (ProductState, error) {
	switch ProductState(s) {
	case StateRaw, StateCooked:
		return ProductState(s), nil
	default:
		return "", fmt.Errorf("unknown product state %q", s)
	}
}

package models

import (
	"fmt"
	"strings"
)

// SKU is a value object representing a stock-keeping unit code.
// Comparison between SKUs is case-sensitive exact match.
type SKU string

const maxSKULength = 64

// NewSKU constructs a valid SKU or returns an error if constraints are violated.
func NewSKU(s string) (SKU, error) {
	if s == "" {
		return "", fmt.Errorf("sku must not be empty")
	}
	if len(s) > maxSKULength {
		return "", fmt.Errorf("sku must not exceed %d characters", maxSKULength)
	}
	if strings.ContainsAny(s, " \t\n") {
		return "", fmt.Errorf("sku must not contain whitespace")
	}
	return SKU(s), nil
}

// String returns the underlying string value.
func (s SKU) String() string {
	return string(s)
}

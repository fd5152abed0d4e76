package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSKU indicates another product already carries the same SKU.
	// SKU comparison is case-sensitive exact match.
	ErrDuplicateSKU = errors.New("duplicate sku")

	// ErrInvalidProduct indicates the product data violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")
)

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/catalog/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// Save persists a new Product. Returns ErrDuplicateSKU if another
	// product already carries the same SKU.
	Save(ctx context.Context, product *models.Product) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// List returns all products in insertion order, newest first. A non-empty
	// query filters by case-insensitive substring match on name, SKU, or
	// category.
	List(ctx context.Context, query string) ([]*models.Product, error)

	// Update fully replaces an existing Product's data; no partial merge.
	// Returns ErrDuplicateSKU if the new SKU collides with another product.
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product by ID. Orders referencing it keep their
	// denormalized name/price snapshots, so no referential check is made.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustQuantity applies quantity = max(0, quantity+delta) and returns
	// the resulting quantity. The clamp is a safety net only: callers that
	// care about reservation accuracy must validate before decrementing,
	// because a clamped decrement silently loses stock accounting.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error)

	// Quantity returns the current on-hand quantity for a product.
	Quantity(ctx context.Context, id uuid.UUID) (int, error)
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/orders/domain/models"
)

// OrderRepository is the persistence interface for the CustomerOrder aggregate.
type OrderRepository interface {
	// Save persists a new order.
	Save(ctx context.Context, order *models.CustomerOrder) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.CustomerOrder, error)

	// List returns all orders, most recently created first.
	List(ctx context.Context) ([]*models.CustomerOrder, error)

	// Update replaces the stored order's items and header in one step.
	Update(ctx context.Context, order *models.CustomerOrder) error

	// Delete removes an order. Stock is not restocked on delete.
	Delete(ctx context.Context, id uuid.UUID) error
}

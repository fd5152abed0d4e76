// Package memory holds the in-memory implementation of the orders repository.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	ordersdomain "github.com/ghuser/stockroom/services/orders/domain"
	"github.com/ghuser/stockroom/services/orders/domain/models"
)

// OrderRepository implements repositories.OrderRepository with a
// mutex-guarded map. Orders are returned as deep copies; item slices are
// cloned so callers can never mutate stored lines.
type OrderRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*models.CustomerOrder
	ordering []uuid.UUID // most recent first
}

// NewOrderRepository returns an empty in-memory order store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[uuid.UUID]*models.CustomerOrder),
	}
}

// Save persists a new order.
func (r *OrderRepository) Save(_ context.Context, order *models.CustomerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[order.ID] = clone(order)
	r.ordering = append([]uuid.UUID{order.ID}, r.ordering...)
	return nil
}

// GetByID returns a copy of the order or ErrOrderNotFound.
func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (*models.CustomerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, ordersdomain.ErrOrderNotFound
	}
	return clone(o), nil
}

// List returns all orders, most recently created first.
func (r *OrderRepository) List(_ context.Context) ([]*models.CustomerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.CustomerOrder, 0, len(r.ordering))
	for _, id := range r.ordering {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

// Update replaces the stored order's items and header in one step.
func (r *OrderRepository) Update(_ context.Context, order *models.CustomerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; !ok {
		return ordersdomain.ErrOrderNotFound
	}
	r.byID[order.ID] = clone(order)
	return nil
}

// Delete removes an order by ID.
func (r *OrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ordersdomain.ErrOrderNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.ordering {
		if oid == id {
			r.ordering = append(r.ordering[:i], r.ordering[i+1:]...)
			break
		}
	}
	return nil
}

func clone(o *models.CustomerOrder) *models.CustomerOrder {
	cp := *o
	cp.Items = make([]models.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

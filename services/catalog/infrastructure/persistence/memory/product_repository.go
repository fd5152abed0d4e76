// Package memory holds the in-memory implementation of the catalog
// repository. State is process-lifetime only; there is no durable backend.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/stockroom/services/catalog/domain"
	"github.com/ghuser/stockroom/services/catalog/domain/models"
)

// ProductRepository implements repositories.ProductRepository with a
// mutex-guarded map. Products are returned as copies so callers can never
// mutate stored state without going through the repository.
type ProductRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*models.Product
	ordering []uuid.UUID // newest first
}

// NewProductRepository returns an empty in-memory product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID: make(map[uuid.UUID]*models.Product),
	}
}

// Save persists a new Product. Returns ErrDuplicateSKU when another product
// already carries the same SKU (case-sensitive exact match).
func (r *ProductRepository) Save(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(product.SKU, product.ID) {
		return catalogdomain.ErrDuplicateSKU
	}

	cp := *product
	r.byID[product.ID] = &cp
	r.ordering = append([]uuid.UUID{product.ID}, r.ordering...)
	return nil
}

// GetByID returns a copy of the product or ErrProductNotFound.
func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

// List returns all products newest first, optionally filtered by a
// case-insensitive substring match on name, SKU, or category.
func (r *ProductRepository) List(_ context.Context, query string) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.Product, 0, len(r.ordering))
	for _, id := range r.ordering {
		p := r.byID[id]
		if q != "" && !matches(p, q) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Update fully replaces an existing product's data.
func (r *ProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[product.ID]; !ok {
		return catalogdomain.ErrProductNotFound
	}
	if r.skuTaken(product.SKU, product.ID) {
		return catalogdomain.ErrDuplicateSKU
	}

	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

// Delete removes a product by ID.
func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return catalogdomain.ErrProductNotFound
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

// AdjustQuantity applies quantity = max(0, quantity+delta) and returns the
// resulting quantity. The zero clamp never rejects an over-decrement; callers
// that need accuracy must validate the delta before calling.
func (r *ProductRepository) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return 0, catalogdomain.ErrProductNotFound
	}
	p.Quantity += delta
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	return p.Quantity, nil
}

// Quantity returns the current on-hand quantity for a product.
func (r *ProductRepository) Quantity(_ context.Context, id uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return 0, catalogdomain.ErrProductNotFound
	}
	return p.Quantity, nil
}

// skuTaken reports whether any product other than excludeID carries sku.
// Caller must hold the lock.
func (r *ProductRepository) skuTaken(sku models.SKU, excludeID uuid.UUID) bool {
	for id, p := range r.byID {
		if id != excludeID && p.SKU == sku {
			return true
		}
	}
	return false
}

func matches(p *models.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU.String()), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

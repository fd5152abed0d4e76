package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/advisory"
	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	catalogdomain "github.com/ghuser/stockroom/services/catalog/domain"
	"github.com/ghuser/stockroom/services/catalog/domain/events"
	"github.com/ghuser/stockroom/services/catalog/domain/models"
	"github.com/ghuser/stockroom/services/catalog/domain/repositories"
)

// CatalogService orchestrates product CRUD, stock adjustments, inventory
// reporting, and AI advisory text. It publishes catalog events on the bus
// after each successful state change; event delivery is best-effort and a
// publish failure never rolls back the store.
type CatalogService struct {
	repo      repositories.ProductRepository
	bus       *pkgevents.EventBus
	advisory  *advisory.Client
	cache     *pkgcache.AdvisoryCache // nil when Redis is not configured
	log       logger.Logger
	threshold int
}

// NewCatalogService returns a CatalogService wired with the given dependencies.
func NewCatalogService(
	repo repositories.ProductRepository,
	bus *pkgevents.EventBus,
	adv *advisory.Client,
	advCache *pkgcache.AdvisoryCache,
	log logger.Logger,
	lowStockThreshold int,
) *CatalogService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = models.DefaultLowStockThreshold
	}
	return &CatalogService{
		repo:      repo,
		bus:       bus,
		advisory:  adv,
		cache:     advCache,
		log:       log,
		threshold: lowStockThreshold,
	}
}

// ProductInput carries the fields for creating or fully replacing a product.
type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Quantity    int
	PriceRaw    decimal.Decimal
	PriceCooked decimal.Decimal
	Description string
}

// Create validates and persists a new product, then publishes ProductCreatedEvent.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	sku, err := models.NewSKU(in.SKU)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(in.Name, sku, in.Category, in.Quantity, in.PriceRaw, in.PriceCooked, in.Description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.publish(ctx, events.TopicProductCreated, events.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  product.ID,
		Name:       product.Name,
		SKU:        product.SKU.String(),
		OccurredAt: time.Now().UTC(),
	})

	return product, nil
}

// GetByID returns a single product.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// List returns products newest first, optionally filtered by substring query.
func (s *CatalogService) List(ctx context.Context, query string) ([]*models.Product, error) {
	products, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update fully replaces an existing product's data. A quantity change through
// this path also publishes StockAdjustedEvent so downstream caches stay fresh.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, in ProductInput) (*models.Product, error) {
	sku, err := models.NewSKU(in.SKU)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	updated, err := models.NewProduct(in.Name, sku, in.Category, in.Quantity, in.PriceRaw, in.PriceCooked, in.Description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	updated.ID = existing.ID

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if delta := updated.Quantity - existing.Quantity; delta != 0 {
		s.publish(ctx, events.TopicStockAdjusted, events.StockAdjustedEvent{
			EventID:       uuid.New(),
			Version:       1,
			ProductID:     updated.ID,
			Name:          updated.Name,
			Delta:         delta,
			QuantityAfter: updated.Quantity,
			OccurredAt:    time.Now().UTC(),
		})
	}

	return updated, nil
}

// Delete removes a product. Existing orders keep their denormalized
// name and price snapshots, so no referential check is made.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// AdjustStock applies a manual on-hand delta, clamped at zero, and returns
// the updated product. Publishes StockAdjustedEvent with the actual change.
func (s *CatalogService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*models.Product, error) {
	before, err := s.repo.Quantity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quantity: %w", err)
	}

	after, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if after != before {
		s.publish(ctx, events.TopicStockAdjusted, events.StockAdjustedEvent{
			EventID:       uuid.New(),
			Version:       1,
			ProductID:     id,
			Name:          product.Name,
			Delta:         after - before,
			QuantityAfter: after,
			OccurredAt:    time.Now().UTC(),
		})
	}

	return product, nil
}

// StockStatus classifies a quantity against the configured low-stock threshold.
func (s *CatalogService) StockStatus(quantity int) models.StockStatus {
	return models.StatusFor(quantity, s.threshold)
}

// Stats summarizes the inventory for the dashboard endpoint.
type Stats struct {
	TotalProducts  int             `json:"total_products"`
	TotalUnits     int             `json:"total_units"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	LowStock       int             `json:"low_stock"`
	OutOfStock     int             `json:"out_of_stock"`
}

// Stats computes inventory totals. Inventory value is on-hand units priced at
// the raw unit price.
func (s *CatalogService) Stats(ctx context.Context) (*Stats, error) {
	products, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	st := &Stats{TotalProducts: len(products), InventoryValue: decimal.Zero}
	for _, p := range products {
		st.TotalUnits += p.Quantity
		st.InventoryValue = st.InventoryValue.Add(p.PriceRaw.Mul(decimal.NewFromInt(int64(p.Quantity))))
		switch models.StatusFor(p.Quantity, s.threshold) {
		case models.StatusLowStock:
			st.LowStock++
		case models.StatusOutOfStock:
			st.OutOfStock++
		}
	}
	return st, nil
}

// LowStockItems returns the products at or below the low-stock threshold,
// including those fully out of stock.
func (s *CatalogService) LowStockItems(ctx context.Context) ([]advisory.LowStockItem, error) {
	products, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var items []advisory.LowStockItem
	for _, p := range products {
		if p.Quantity <= s.threshold {
			items = append(items, advisory.LowStockItem{
				Name:     p.Name,
				Quantity: p.Quantity,
				Price:    p.PriceRaw,
			})
		}
	}
	return items, nil
}

// DescribeProduct returns advisory text for a product listing, served from
// the Redis cache when present. Never fails; degraded paths return a fixed
// fallback string.
func (s *CatalogService) DescribeProduct(ctx context.Context, name, category, keywords string) string {
	if s.cache != nil {
		if text, err := s.cache.GetDescription(ctx, name, category, keywords); err == nil && text != "" {
			return text
		}
	}

	text := s.advisory.GenerateDescription(ctx, name, category, keywords)

	if s.cache != nil && text != advisory.FallbackDescription && text != advisory.FallbackNotConfigured {
		if err := s.cache.SetDescription(ctx, name, category, keywords, text); err != nil {
			s.log.WarnContext(ctx, "failed to cache product description", "error", err)
		}
	}
	return text
}

// RestockAdvice returns restock guidance for the current low-stock set.
// Cached advice is invalidated whenever stock moves (see the stock.adjusted
// subscriber in cmd/api).
func (s *CatalogService) RestockAdvice(ctx context.Context) (string, error) {
	items, err := s.LowStockItems(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return advisory.NoLowStockMessage, nil
	}

	if s.cache != nil {
		if text, err := s.cache.GetRestockAdvice(ctx); err == nil && text != "" {
			return text, nil
		}
	}

	text := s.advisory.SuggestRestock(ctx, items)

	if s.cache != nil && text != advisory.FallbackRestock && text != advisory.FallbackNotConfigured {
		if err := s.cache.SetRestockAdvice(ctx, text); err != nil {
			s.log.WarnContext(ctx, "failed to cache restock advice", "error", err)
		}
	}
	return text, nil
}

// publish marshals the event and fires it on the bus. Failures are logged
// and swallowed; the store remains the source of truth.
func (s *CatalogService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal event", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}

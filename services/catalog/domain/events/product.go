package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the catalog bounded context.
const (
	TopicProductCreated = "product.created"
	TopicStockAdjusted  = "stock.adjusted"
)

// ProductCreatedEvent is published after a new Product is persisted.
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StockAdjustedEvent is published after any on-hand quantity change,
// whether from a manual adjustment or a reservation movement.
type StockAdjustedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	Delta         int       `json:"delta"`
	QuantityAfter int       `json:"quantity_after"`
	OccurredAt    time.Time `json:"occurred_at"`
}

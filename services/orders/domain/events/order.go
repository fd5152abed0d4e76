package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Topics published by the orders bounded context.
const (
	TopicOrderCreated   = "order.created"
	TopicOrderCompleted = "order.completed"
)

// OrderCreatedEvent is published after a reservation succeeds and the order
// is persisted.
type OrderCreatedEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	Version      int             `json:"version"`
	OrderID      uuid.UUID       `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Group        string          `json:"group"`
	ItemCount    int             `json:"item_count"`
	Total        decimal.Decimal `json:"total"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// OrderCompletedEvent is published on the pending to completed transition.
// Completion never moves stock; the units were already deducted at creation.
type OrderCompletedEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	Version    int             `json:"version"`
	OrderID    uuid.UUID       `json:"order_id"`
	Group      string          `json:"group"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

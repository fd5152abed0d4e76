package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/stockroom/services/catalog/domain/models"
)

// OrderItem is one line of a customer order. ProductName and UnitPrice are
// denormalized snapshots taken when the line was written, so the order keeps
// rendering even after the product is edited or deleted.
type OrderItem struct {
	ProductID   uuid.UUID
	ProductName string
	State       catalogmodels.ProductState
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity times unit price for this line.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerOrder is the aggregate root for the orders bounded context.
type CustomerOrder struct {
	ID           uuid.UUID
	CustomerName string
	Group        string
	Status       Status
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCustomerOrder constructs a pending order with a generated ID.
// Items must already be merged and non-empty.
func NewCustomerOrder(customerName, group string, items []OrderItem) (*CustomerOrder, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name must not be empty")
	}
	if group == "" {
		return nil, fmt.Errorf("group must not be empty")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
	}
	now := time.Now().UTC()
	return &CustomerOrder{
		ID:           uuid.New(),
		CustomerName: customerName,
		Group:        group,
		Status:       StatusPending,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Total sums all line totals.
func (o *CustomerOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// IsEditable reports whether the order's items may still change.
func (o *CustomerOrder) IsEditable() bool {
	return o.Status == StatusPending
}

// MergeItems collapses lines that share both product and state by summing
// their quantities. First-seen ordering is preserved; the first line's
// snapshot fields win.
func MergeItems(items []OrderItem) []OrderItem {
	type key struct {
		productID uuid.UUID
		state     catalogmodels.ProductState
	}
	index := make(map[key]int, len(items))
	merged := make([]OrderItem, 0, len(items))
	for _, it := range items {
		k := key{it.ProductID, it.State}
		if i, ok := index[k]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[k] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	catalogdomain "github.com/ghuser/stockroom/services/catalog/domain"
	catalogevents "github.com/ghuser/stockroom/services/catalog/domain/events"
	catalogmodels "github.com/ghuser/stockroom/services/catalog/domain/models"
	catalogrepos "github.com/ghuser/stockroom/services/catalog/domain/repositories"
	ordersdomain "github.com/ghuser/stockroom/services/orders/domain"
	"github.com/ghuser/stockroom/services/orders/domain/events"
	"github.com/ghuser/stockroom/services/orders/domain/models"
	ordersrepos "github.com/ghuser/stockroom/services/orders/domain/repositories"
)

// ReservationService coordinates orders against the catalog's stock pool.
//
// Every unit on a pending or completed order has already been deducted from
// the product's on-hand quantity, so on-hand plus reserved is constant for a
// product between adjustments. Validation happens before any deduction and is
// all-or-nothing per order: a single short product rejects the whole request
// and no stock moves.
//
// All order mutations run under one service-wide mutex. Validation and
// deduction must be atomic with respect to each other, and per-product locks
// would deadlock on multi-product orders.
type ReservationService struct {
	mu       sync.Mutex
	orders   ordersrepos.OrderRepository
	products catalogrepos.ProductRepository
	bus      *pkgevents.EventBus
	log      logger.Logger
}

// NewReservationService returns a ReservationService wired with both stores.
func NewReservationService(
	orders ordersrepos.OrderRepository,
	products catalogrepos.ProductRepository,
	bus *pkgevents.EventBus,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		orders:   orders,
		products: products,
		bus:      bus,
		log:      log,
	}
}

// ItemDraft is one requested order line before validation.
type ItemDraft struct {
	ProductID uuid.UUID
	State     catalogmodels.ProductState
	Quantity  int
}

// OrderDraft carries the fields for creating or editing an order.
type OrderDraft struct {
	CustomerName string
	Group        string
	Items        []ItemDraft
}

// Create validates the draft against current on-hand stock, deducts the
// reserved units, and persists the order. Both product states draw from the
// same stock pool, so a draft's requirement for a product is the sum across
// its raw and cooked lines.
func (s *ReservationService) Create(ctx context.Context, draft OrderDraft) (*models.CustomerOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := mergeDrafts(draft.Items)
	if err != nil {
		return nil, err
	}

	required := requiredPerProduct(merged)
	catalog, err := s.loadProducts(ctx, required)
	if err != nil {
		return nil, err
	}

	var shortages []ordersdomain.Shortage
	for _, pid := range sortedProductIDs(required) {
		p := catalog[pid]
		if required[pid] > p.Quantity {
			shortages = append(shortages, ordersdomain.Shortage{
				ProductID:   pid,
				ProductName: p.Name,
				Requested:   required[pid],
				Available:   p.Quantity,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &ordersdomain.StockError{Shortages: shortages}
	}

	items := buildItems(merged, catalog)
	order, err := models.NewCustomerOrder(draft.CustomerName, draft.Group, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ordersdomain.ErrInvalidOrder, err)
	}

	s.applyStockDeltas(ctx, negate(required), catalog)

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.publish(ctx, events.TopicOrderCreated, events.OrderCreatedEvent{
		EventID:      uuid.New(),
		Version:      1,
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Group:        order.Group,
		ItemCount:    len(order.Items),
		Total:        order.Total(),
		OccurredAt:   time.Now().UTC(),
	})

	return order, nil
}

// Edit replaces a pending order's items and header. Validation uses a
// per-product ceiling of on-hand plus the order's own previous reservation:
// the edit may reuse everything the order already holds, but nothing held by
// other orders. On success the original units are restocked and the new
// requirement deducted in one step per product.
func (s *ReservationService) Edit(ctx context.Context, id uuid.UUID, draft OrderDraft) (*models.CustomerOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.IsEditable() {
		return nil, ordersdomain.ErrOrderNotEditable
	}

	merged, err := mergeDrafts(draft.Items)
	if err != nil {
		return nil, err
	}

	required := requiredPerProduct(merged)
	catalog, err := s.loadProducts(ctx, required)
	if err != nil {
		return nil, err
	}

	original := make(map[uuid.UUID]int)
	for _, it := range order.Items {
		original[it.ProductID] += it.Quantity
	}

	var shortages []ordersdomain.Shortage
	for _, pid := range sortedProductIDs(required) {
		p := catalog[pid]
		ceiling := p.Quantity + original[pid]
		if required[pid] > ceiling {
			shortages = append(shortages, ordersdomain.Shortage{
				ProductID:   pid,
				ProductName: p.Name,
				Requested:   required[pid],
				Available:   ceiling,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &ordersdomain.StockError{Shortages: shortages}
	}

	if draft.CustomerName == "" || draft.Group == "" {
		return nil, fmt.Errorf("%w: customer name and group must not be empty", ordersdomain.ErrInvalidOrder)
	}
	order.Items = buildItems(merged, catalog)
	order.CustomerName = draft.CustomerName
	order.Group = draft.Group
	order.UpdatedAt = time.Now().UTC()

	// Net movement per product: restock the original reservation, deduct the
	// new one. Products dropped from the order appear with a positive delta.
	deltas := make(map[uuid.UUID]int)
	for pid, qty := range original {
		deltas[pid] += qty
	}
	for pid, qty := range required {
		deltas[pid] -= qty
	}
	s.applyStockDeltas(ctx, deltas, catalog)

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	return order, nil
}

// Complete moves an order from pending to completed. Stock does not move:
// the units were deducted when the order was created.
func (s *ReservationService) Complete(ctx context.Context, id uuid.UUID) (*models.CustomerOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.Status.CanTransition(models.StatusCompleted) {
		return nil, ordersdomain.ErrOrderNotEditable
	}

	order.Status = models.StatusCompleted
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.publish(ctx, events.TopicOrderCompleted, events.OrderCompletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    order.ID,
		Group:      order.Group,
		Total:      order.Total(),
		OccurredAt: time.Now().UTC(),
	})

	return order, nil
}

// Delete removes an order without restocking. A deleted pending order's
// units stay deducted; use Edit to release stock first if that is not wanted.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// GetByID returns a single order.
func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*models.CustomerOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns all orders, most recently created first.
func (s *ReservationService) List(ctx context.Context) ([]*models.CustomerOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GroupRevenue is one row of the per-group revenue report.
type GroupRevenue struct {
	Group       string          `json:"group"`
	TotalOrders int             `json:"total_orders"`
	Completed   int             `json:"completed"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// GroupRevenueReport aggregates orders by group, sorted by group name.
// Revenue counts completed orders only; pending totals are not yet earned.
func (s *ReservationService) GroupRevenueReport(ctx context.Context) ([]GroupRevenue, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byGroup := make(map[string]*GroupRevenue)
	for _, o := range orders {
		row, ok := byGroup[o.Group]
		if !ok {
			row = &GroupRevenue{Group: o.Group, Revenue: decimal.Zero}
			byGroup[o.Group] = row
		}
		row.TotalOrders++
		if o.Status == models.StatusCompleted {
			row.Completed++
			row.Revenue = row.Revenue.Add(o.Total())
		}
	}

	report := make([]GroupRevenue, 0, len(byGroup))
	for _, row := range byGroup {
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Group < report[j].Group })
	return report, nil
}

// mergeDrafts validates line quantities and states, then collapses lines
// sharing product and state by summing quantities.
func mergeDrafts(items []ItemDraft) ([]ItemDraft, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ordersdomain.ErrInvalidOrder)
	}

	type key struct {
		productID uuid.UUID
		state     catalogmodels.ProductState
	}
	index := make(map[key]int, len(items))
	merged := make([]ItemDraft, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ordersdomain.ErrInvalidOrder)
		}
		if _, err := catalogmodels.ParseProductState(string(it.State)); err != nil {
			return nil, fmt.Errorf("%w: %w", ordersdomain.ErrInvalidOrder, err)
		}
		k := key{it.ProductID, it.State}
		if i, ok := index[k]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[k] = len(merged)
		merged = append(merged, it)
	}
	return merged, nil
}

// requiredPerProduct sums merged line quantities across states per product.
func requiredPerProduct(merged []ItemDraft) map[uuid.UUID]int {
	required := make(map[uuid.UUID]int)
	for _, it := range merged {
		required[it.ProductID] += it.Quantity
	}
	return required
}

// loadProducts fetches every referenced product once.
func (s *ReservationService) loadProducts(ctx context.Context, required map[uuid.UUID]int) (map[uuid.UUID]*catalogmodels.Product, error) {
	catalog := make(map[uuid.UUID]*catalogmodels.Product, len(required))
	for pid := range required {
		p, err := s.products.GetByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", pid, err)
		}
		catalog[pid] = p
	}
	return catalog, nil
}

// buildItems turns merged drafts into order lines, snapshotting the product
// name and the unit price for the line's state.
func buildItems(merged []ItemDraft, catalog map[uuid.UUID]*catalogmodels.Product) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(merged))
	for _, it := range merged {
		p := catalog[it.ProductID]
		items = append(items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: p.Name,
			State:       it.State,
			Quantity:    it.Quantity,
			UnitPrice:   p.PriceFor(it.State),
		})
	}
	return items
}

// applyStockDeltas moves stock and publishes one StockAdjustedEvent per
// product that actually changed. Products no longer in the catalog are
// skipped; their snapshot lines keep rendering but there is nothing to
// restock.
func (s *ReservationService) applyStockDeltas(ctx context.Context, deltas map[uuid.UUID]int, catalog map[uuid.UUID]*catalogmodels.Product) {
	for _, pid := range sortedProductIDs(deltas) {
		delta := deltas[pid]
		if delta == 0 {
			continue
		}
		after, err := s.products.AdjustQuantity(ctx, pid, delta)
		if err != nil {
			if !errors.Is(err, catalogdomain.ErrProductNotFound) {
				s.log.WarnContext(ctx, "skipping stock adjustment", "product_id", pid, "error", err)
			}
			continue
		}

		name := ""
		if p, ok := catalog[pid]; ok {
			name = p.Name
		}
		s.publish(ctx, catalogevents.TopicStockAdjusted, catalogevents.StockAdjustedEvent{
			EventID:       uuid.New(),
			Version:       1,
			ProductID:     pid,
			Name:          name,
			Delta:         delta,
			QuantityAfter: after,
			OccurredAt:    time.Now().UTC(),
		})
	}
}

func negate(required map[uuid.UUID]int) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(required))
	for pid, qty := range required {
		out[pid] = -qty
	}
	return out
}

// sortedProductIDs gives map iteration a stable order so stock adjustments
// and shortage reporting are deterministic.
func sortedProductIDs(m map[uuid.UUID]int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for pid := range m {
		ids = append(ids, pid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// publish marshals the event and fires it on the bus. Failures are logged
// and swallowed; the stores remain the source of truth.
func (s *ReservationService) publish(ctx context.Context, topic string, event any) {
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

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	catalogmodels "github.com/ghuser/stockroom/services/catalog/domain/models"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
	ordersdomain "github.com/ghuser/stockroom/services/orders/domain"
	"github.com/ghuser/stockroom/services/orders/domain/models"
)

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	State     string `json:"state" validate:"required,oneof=raw cooked" example:"raw"`
	Quantity  int    `json:"quantity" validate:"required,gt=0" example:"4"`
} // @name OrderItemRequest

// OrderRequest is the request body for creating or editing an order.
type OrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required,min=1,max=255" example:"Alice"`
	Group        string             `json:"group" validate:"required,min=1,max=128" example:"north-wing"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
} // @name OrderRequest

func (r OrderRequest) toDraft() appsvcs.OrderDraft {
	draft := appsvcs.OrderDraft{
		CustomerName: r.CustomerName,
		Group:        r.Group,
		Items:        make([]appsvcs.ItemDraft, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		// ProductID already passed uuid validation.
		pid, _ := uuid.Parse(it.ProductID)
		draft.Items = append(draft.Items, appsvcs.ItemDraft{
			ProductID: pid,
			State:     catalogmodels.ProductState(it.State),
			Quantity:  it.Quantity,
		})
	}
	return draft
}

// OrderItemResponse is the wire representation of one order line.
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	State       string          `json:"state"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
} // @name OrderItemResponse

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerName string              `json:"customer_name"`
	Group        string              `json:"group"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
} // @name OrderResponse

// StockErrorResponse is returned when a reservation is rejected. No stock
// moved; shortages list every product that could not cover the request.
type StockErrorResponse struct {
	Error     string                  `json:"error"`
	Shortages []ordersdomain.Shortage `json:"shortages"`
} // @name StockErrorResponse

// ErrorResponse is returned on all other error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found"`
} // @name ErrorResponse

func toOrderResponse(o *models.CustomerOrder) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			State:       string(it.State),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Group:        o.Group,
		Status:       string(o.Status),
		Items:        items,
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// writeOrderError renders reservation rejections with per-product shortage
// detail; everything else goes through the shared sentinel mapping.
func writeOrderError(w http.ResponseWriter, err error) {
	var stockErr *ordersdomain.StockError
	if errors.As(err, &stockErr) {
		httpx.JSON(w, http.StatusUnprocessableEntity, StockErrorResponse{
			Error:     stockErr.Error(),
			Shortages: stockErr.Shortages,
		})
		return
	}
	errhttp.WriteError(w, err)
}

// orderID parses the {id} URL parameter. Writes 400 and returns false on
// malformed input.
func orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid order id")
		return uuid.Nil, false
	}
	return id, true
}

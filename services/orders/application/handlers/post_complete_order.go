package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// PostCompleteOrderHandler handles POST /orders/{id}/complete requests.
type PostCompleteOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostCompleteOrderHandler returns a PostCompleteOrderHandler backed by the given services.
func NewPostCompleteOrderHandler(svc *appsvcs.Services) *PostCompleteOrderHandler {
	return &PostCompleteOrderHandler{svc: svc}
}

// Execute marks a pending order completed. Completion never moves stock.
//
//	@Summary	Complete order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/complete [post]
func (h *PostCompleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.Reservations.Complete(r.Context(), id)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

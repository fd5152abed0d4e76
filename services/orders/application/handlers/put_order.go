package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// PutOrderHandler handles PUT /orders/{id} requests.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

// NewPutOrderHandler returns a PutOrderHandler backed by the given services.
func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute replaces a pending order's items and header. The edit may reuse
// the order's own previous reservation but nothing held by other orders.
//
//	@Summary	Edit order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Order ID"
//	@Param		request	body		OrderRequest	true	"Replacement order draft"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	StockErrorResponse
//	@Router		/orders/{id} [put]
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Reservations.Edit(r.Context(), id, req.toDraft())
	if err != nil {
		writeOrderError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

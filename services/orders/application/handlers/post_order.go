package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates an order, reserving stock for every line. The whole
// request is rejected if any product cannot cover its requested quantity.
//
//	@Summary		Create order
//	@Description	Validates stock and reserves units for all lines atomically
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OrderRequest	true	"Order draft"
//	@Success		201		{object}	OrderResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	StockErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Reservations.Create(r.Context(), req.toDraft())
	if err != nil {
		writeOrderError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOrderResponse(order))
}

package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// GetOrdersHandler handles GET /orders requests.
type GetOrdersHandler struct {
	svc *appsvcs.Services
}

// NewGetOrdersHandler returns a GetOrdersHandler backed by the given services.
func NewGetOrdersHandler(svc *appsvcs.Services) *GetOrdersHandler {
	return &GetOrdersHandler{svc: svc}
}

// ListOrdersResponse wraps the order list.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
} // @name ListOrdersResponse

// Execute lists orders, most recently created first.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	ListOrdersResponse
//	@Router		/orders [get]
func (h *GetOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Reservations.List(r.Context())
	if err != nil {
		writeOrderError(w, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	httpx.JSON(w, http.StatusOK, ListOrdersResponse{Orders: out, Total: len(out)})
}

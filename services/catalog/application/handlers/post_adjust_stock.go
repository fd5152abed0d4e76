package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/catalog/application/services"
)

// AdjustStockRequest is the request body for a manual stock adjustment.
// Delta may be negative; the resulting quantity is clamped at zero.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required" example:"-3"`
} // @name AdjustStockRequest

// PostAdjustStockHandler handles POST /products/{id}/adjust requests.
type PostAdjustStockHandler struct {
	svc *appsvcs.Services
}

// NewPostAdjustStockHandler returns a PostAdjustStockHandler backed by the given services.
func NewPostAdjustStockHandler(svc *appsvcs.Services) *PostAdjustStockHandler {
	return &PostAdjustStockHandler{svc: svc}
}

// Execute applies a manual on-hand delta and returns the updated product.
//
//	@Summary	Adjust stock
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Product ID"
//	@Param		request	body		AdjustStockRequest	true	"Quantity delta"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id}/adjust [post]
func (h *PostAdjustStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustStockRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Catalog.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product, h.svc.Catalog.StockStatus(product.Quantity)))
}

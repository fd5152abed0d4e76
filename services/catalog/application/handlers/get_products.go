package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/catalog/application/services"
)

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// ListProductsResponse wraps the product list.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
} // @name ListProductsResponse

// Execute lists products newest first. The optional q parameter filters by
// substring match on name, SKU, or category.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		q	query		string	false	"Filter query"
//	@Success	200	{object}	ListProductsResponse
//	@Router		/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, h.svc.Catalog.StockStatus(p.Quantity)))
	}
	httpx.JSON(w, http.StatusOK, ListProductsResponse{Products: out, Total: len(out)})
}

package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/catalog/application/services"
)

// RestockAdviceResponse carries restock guidance for the low-stock set.
type RestockAdviceResponse struct {
	Advice string `json:"advice"`
} // @name RestockAdviceResponse

// GetRestockAdviceHandler handles GET /advisory/restock requests.
type GetRestockAdviceHandler struct {
	svc *appsvcs.Services
}

// NewGetRestockAdviceHandler returns a GetRestockAdviceHandler backed by the given services.
func NewGetRestockAdviceHandler(svc *appsvcs.Services) *GetRestockAdviceHandler {
	return &GetRestockAdviceHandler{svc: svc}
}

// Execute returns restock guidance based on the current low-stock products.
//
//	@Summary	Restock advice
//	@Tags		advisory
//	@Produce	json
//	@Success	200	{object}	RestockAdviceResponse
//	@Router		/advisory/restock [get]
func (h *GetRestockAdviceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	advice, err := h.svc.Catalog.RestockAdvice(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, RestockAdviceResponse{Advice: advice})
}

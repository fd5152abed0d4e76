package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// GetGroupReportHandler handles GET /orders/reports/groups requests.
type GetGroupReportHandler struct {
	svc *appsvcs.Services
}

// NewGetGroupReportHandler returns a GetGroupReportHandler backed by the given services.
func NewGetGroupReportHandler(svc *appsvcs.Services) *GetGroupReportHandler {
	return &GetGroupReportHandler{svc: svc}
}

// GroupReportResponse wraps the per-group revenue rows.
type GroupReportResponse struct {
	Groups []appsvcs.GroupRevenue `json:"groups"`
} // @name GroupReportResponse

// Execute returns per-group order counts and completed revenue.
//
//	@Summary	Group revenue report
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	GroupReportResponse
//	@Router		/orders/reports/groups [get]
func (h *GetGroupReportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Reservations.GroupRevenueReport(r.Context())
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, GroupReportResponse{Groups: report})
}

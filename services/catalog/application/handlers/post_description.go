package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/catalog/application/services"
)

// DescriptionRequest is the request body for generated product copy.
type DescriptionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255" example:"Basmati Rice"`
	Category string `json:"category" validate:"max=128" example:"grains"`
	Keywords string `json:"keywords" validate:"max=512" example:"aromatic, long grain"`
} // @name DescriptionRequest

// DescriptionResponse carries the generated text.
type DescriptionResponse struct {
	Description string `json:"description"`
} // @name DescriptionResponse

// PostDescriptionHandler handles POST /advisory/description requests.
type PostDescriptionHandler struct {
	svc *appsvcs.Services
}

// NewPostDescriptionHandler returns a PostDescriptionHandler backed by the given services.
func NewPostDescriptionHandler(svc *appsvcs.Services) *PostDescriptionHandler {
	return &PostDescriptionHandler{svc: svc}
}

// Execute generates product description copy. Always returns 200; degraded
// advisory paths yield a fixed fallback string.
//
//	@Summary	Generate product description
//	@Tags		advisory
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DescriptionRequest	true	"Product attributes"
//	@Success	200		{object}	DescriptionResponse
//	@Router		/advisory/description [post]
func (h *PostDescriptionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DescriptionRequest](w, r)
	if !ok {
		return
	}

	text := h.svc.Catalog.DescribeProduct(r.Context(), req.Name, req.Category, req.Keywords)
	httpx.JSON(w, http.StatusOK, DescriptionResponse{Description: text})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/httpx"

	appsvcs "github.com/ghuser/stockroom/services/catalog/application/services"
	"github.com/ghuser/stockroom/services/catalog/domain/models"
)

// ProductRequest is the request body for creating or replacing a product.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255" example:"Basmati Rice"`
	SKU         string  `json:"sku" validate:"required,min=1,max=64" example:"RICE-001"`
	Category    string  `json:"category" validate:"max=128" example:"grains"`
	Quantity    int     `json:"quantity" validate:"min=0" example:"10"`
	PriceRaw    float64 `json:"price_raw" validate:"required,gt=0" example:"2.50"`
	PriceCooked float64 `json:"price_cooked" validate:"required,gt=0" example:"4.00"`
	Description string  `json:"description" validate:"max=2048" example:"Long grain aromatic rice"`
} // @name ProductRequest

func (r ProductRequest) toInput() appsvcs.ProductInput {
	return appsvcs.ProductInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Category:    r.Category,
		Quantity:    r.Quantity,
		PriceRaw:    decimal.NewFromFloat(r.PriceRaw),
		PriceCooked: decimal.NewFromFloat(r.PriceCooked),
		Description: r.Description,
	}
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	Category    string             `json:"category"`
	Quantity    int                `json:"quantity"`
	PriceRaw    decimal.Decimal    `json:"price_raw"`
	PriceCooked decimal.Decimal    `json:"price_cooked"`
	Description string             `json:"description"`
	StockStatus models.StockStatus `json:"stock_status"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func toProductResponse(p *models.Product, status models.StockStatus) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU.String(),
		Category:    p.Category,
		Quantity:    p.Quantity,
		PriceRaw:    p.PriceRaw,
		PriceCooked: p.PriceCooked,
		Description: p.Description,
		StockStatus: status,
	}
}

// productID parses the {id} URL parameter. Writes 400 and returns false on
// malformed input.
func productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}

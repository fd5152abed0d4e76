package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/orders/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/orders/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.NewGetOrdersHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Get("/reports/groups", handlers.NewGetGroupReportHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutOrderHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteOrderHandler(svcs).Execute)
			r.Post("/{id}/complete", handlers.NewPostCompleteOrderHandler(svcs).Execute)
		})
	})
}

package services

import (
	"github.com/ghuser/stockroom/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Reservations *ReservationService
}

// New wires all orders application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Reservations: NewReservationService(a.Orders, a.Products, a.EventBus, a.Logger),
	}
}

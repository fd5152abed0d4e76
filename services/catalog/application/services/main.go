package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var advCache *cache.AdvisoryCache
	if a.Redis != nil {
		advCache = cache.NewAdvisoryCache(a.Redis)
	}
	return &Services{
		Catalog: NewCatalogService(a.Products, a.EventBus, a.Advisory, advCache, a.Logger, a.Config.LowStockThreshold),
	}
}

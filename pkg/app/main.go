package app

import (
	"github.com/ghuser/stockroom/pkg/advisory"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	catalogrepos "github.com/ghuser/stockroom/services/catalog/domain/repositories"
	ordersrepos "github.com/ghuser/stockroom/services/orders/domain/repositories"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// The in-memory stores live here rather than inside each bounded context
// because the orders context reserves against the catalog's stock pool and
// both must see the same instance.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "reserving stock", "order_id", id)
//	app.Logger.ErrorContext(ctx, "advisory call failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when caching is disabled
	Advisory *advisory.Client

	Products catalogrepos.ProductRepository
	Orders   ordersrepos.OrderRepository
}

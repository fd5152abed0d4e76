package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	catalogevents "github.com/ghuser/stockroom/services/catalog/domain/events"
)

// startSubscribers wires the in-process event handlers. The bus transport is
// process-local, so subscriptions must be in place before any publisher runs.
func startSubscribers(ctx context.Context, a *app.Application) error {
	var advCache *cache.AdvisoryCache
	if a.Redis != nil {
		advCache = cache.NewAdvisoryCache(a.Redis)
	}

	// Any stock movement invalidates cached restock advice and flags
	// products crossing the low-stock threshold.
	errCh, err := a.EventBus.Subscribe(ctx, catalogevents.TopicStockAdjusted, func(ctx context.Context, msg *message.Message) error {
		var event catalogevents.StockAdjustedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("unmarshal stock adjusted event: %w", err)
		}

		if advCache != nil {
			if err := advCache.InvalidateRestockAdvice(ctx); err != nil {
				a.Logger.WarnContext(ctx, "failed to invalidate restock advice cache", "error", err)
			}
		}

		if event.QuantityAfter <= a.Config.LowStockThreshold {
			a.Logger.WarnContext(ctx, "product stock low",
				"product_id", event.ProductID,
				"name", event.Name,
				"quantity", event.QuantityAfter,
				"threshold", a.Config.LowStockThreshold,
			)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", catalogevents.TopicStockAdjusted, err)
	}
	drainSubscriberErrors(a, catalogevents.TopicStockAdjusted, errCh)

	return nil
}

// drainSubscriberErrors logs handler failures that exhausted their retries.
func drainSubscriberErrors(a *app.Application, topic string, errCh <-chan error) {
	go func() {
		for err := range errCh {
			a.Logger.Error("event handler failed", "topic", topic, "error", err)
		}
	}()
}

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/campusmart/campusmart/pkg/app"
	"github.com/campusmart/campusmart/pkg/cache"
	"github.com/campusmart/campusmart/pkg/config"
	"github.com/campusmart/campusmart/pkg/database"
	"github.com/campusmart/campusmart/pkg/events"
	"github.com/campusmart/campusmart/pkg/logger"
	"github.com/campusmart/campusmart/pkg/mailer"
	"github.com/campusmart/campusmart/pkg/telemetry"
	listingEvents "github.com/campusmart/campusmart/services/catalog/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
		Mailer: mailer.New(cfg),
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		listingEvents.TopicListingCreated: handleListingCreated(a),
		listingEvents.TopicListingSold:    handleListingSold(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleListingCreated returns a handler for listing.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache and mails the seller a confirmation.
func handleListingCreated(a *app.Application) func(context.Context, *message.Message) error {
	listingCache := cache.NewListingCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listingEvents.ListingCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listingCache.Set(ctx, &cache.CachedListing{
			ID:         evt.ListingID,
			Campus:     evt.Campus,
			Title:      evt.Title,
			Price:      evt.Price,
			SellerName: evt.SellerName,
			CreatedAt:  evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for listing.created",
				"listing_id", evt.ListingID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"listing_id", evt.ListingID, "campus", evt.Campus)
		}

		// Confirmation mail is also best-effort: a flaky SMTP relay must not
		// cause redelivery and duplicate mail on the cache path.
		if err := a.Mailer.SendListingPosted(evt.SellerEmail, evt.SellerName, evt.Title, evt.Price); err != nil {
			a.Logger.WarnContext(ctx, "confirmation mail failed for listing.created",
				"listing_id", evt.ListingID, "error", err)
		}

		return nil
	}
}

// handleListingSold returns a handler for listing.sold events.
// Updates the cached card's sold flag and notifies the seller.
func handleListingSold(a *app.Application) func(context.Context, *message.Message) error {
	listingCache := cache.NewListingCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listingEvents.ListingSoldEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listingCache.MarkSold(ctx, evt.Campus, evt.ListingID, evt.Sold); err != nil {
			a.Logger.WarnContext(ctx, "cache update failed for listing.sold",
				"listing_id", evt.ListingID, "error", err)
		}

		if evt.Sold {
			if err := a.Mailer.SendListingSold(evt.SellerEmail, evt.SellerName, evt.Title); err != nil {
				a.Logger.WarnContext(ctx, "sold mail failed for listing.sold",
					"listing_id", evt.ListingID, "error", err)
			}
		}

		return nil
	}
}

package app

import (
	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/cache"
	"github.com/campusmart/campusmart/pkg/database"
	"github.com/campusmart/campusmart/pkg/events"
	"github.com/campusmart/campusmart/pkg/logger"
	"github.com/campusmart/campusmart/pkg/mailer"
	"github.com/campusmart/campusmart/pkg/storage"
	"github.com/campusmart/campusmart/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing listing", "listing_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store      // Redis-backed session store; nil in worker process
	Images         *storage.ImageStore // listing image bucket; nil in worker process
	Mailer         *mailer.Mailer      // SMTP notifications; nil in api process
}

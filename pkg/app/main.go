package app

import (
	"github.com/ghuser/shoppingcart/pkg/config"
	"github.com/ghuser/shoppingcart/pkg/events"
	"github.com/ghuser/shoppingcart/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "ticket issued", "ticket_id", id)
//	app.Logger.ErrorContext(ctx, "publish failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
}

// IsProduction reports whether error details must be hidden from clients.
func (a *Application) IsProduction() bool {
	return a.Config != nil && a.Config.Environment == config.EnvProduction
}

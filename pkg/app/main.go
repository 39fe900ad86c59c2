package app

import (
	"github.com/ghuser/gourmet/pkg/config"
	"github.com/ghuser/gourmet/pkg/events"
	"github.com/ghuser/gourmet/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// It is built once by the composition root (cmd/demo) and passed down
// explicitly; there is no global restaurant instance.
//
// Logging: app.Logger is backed by a JSON slog handler. Use slog's context
// methods inside request-scoped code:
//
//	app.Logger.InfoContext(ctx, "placing order", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to place order", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
}

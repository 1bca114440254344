package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/http/handlers"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/http/views"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Classify        *handlers.ClassifyHandler
	Metrics         *handlers.MetricsHandler
	Auth            *handlers.AuthHandler
	Classifications *handlers.ClassificationsHandler
	AuthMiddleware  *auth.AuthMiddleware
}

// NewApp creates the fiber app with the embedded page templates.
func NewApp(appName string) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	return fiber.New(fiber.Config{
		AppName: appName,
		Views:   engine,
	})
}

// RegisterRoutes wires HTTP routes. Classifications is nil when the audit log is off.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Snapshot)
	}

	app.Get("/", cfg.Classify.Home)
	app.Post("/", cfg.Classify.Home)

	if cfg.Auth != nil {
		app.Post("/auth/token", cfg.Auth.Token)
	}

	app.Post("/predict", cfg.AuthMiddleware.Handle, cfg.Classify.Predict)
	if cfg.Classifications != nil {
		app.Get("/classifications", cfg.AuthMiddleware.Handle, cfg.Classifications.ListRecent)
	}
}

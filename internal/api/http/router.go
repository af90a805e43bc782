package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Accounts.Register)
	authGroup.Post("/activate", cfg.Accounts.Activate)
	authGroup.Post("/login", cfg.Accounts.Login)
	authGroup.Post("/password/forgot", cfg.Accounts.ForgotPassword)
	authGroup.Post("/password/reset", cfg.Accounts.ResetPassword)

	protected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/logout", cfg.Accounts.Logout)
	protected.Get("/me", cfg.Accounts.Me)

	app.Get("/accounts", cfg.AuthMiddleware.Handle, cfg.Accounts.List)
}

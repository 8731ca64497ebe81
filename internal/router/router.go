package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harborlight/orphanage-api/internal/config"
	"github.com/harborlight/orphanage-api/internal/handler"
	"github.com/harborlight/orphanage-api/internal/middleware"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler          *handler.AuthHandler
	ActivityHandler      *handler.ActivityHandler
	ParticipationHandler *handler.ParticipationHandler
	ChildHandler         *handler.ChildHandler
	StaffHandler         *handler.StaffHandler
	DonorHandler         *handler.DonorHandler
	DonationHandler      *handler.DonationHandler
	ExpenseHandler       *handler.ExpenseHandler
	DashboardHandler     *handler.DashboardHandler
	AuditHandler         *handler.AuditHandler
	JWTMiddleware        fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	activities := api.Group("/activities", jwtMiddleware)
	children := api.Group("/children", jwtMiddleware)

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(activities)
	}

	if deps.ChildHandler != nil {
		deps.ChildHandler.Register(children)
	}

	if deps.ParticipationHandler != nil {
		participations := api.Group("/participations", jwtMiddleware)
		deps.ParticipationHandler.Register(participations, activities, children)
	}

	if deps.StaffHandler != nil {
		deps.StaffHandler.Register(api.Group("/staff", jwtMiddleware))
	}

	if deps.DonorHandler != nil {
		deps.DonorHandler.Register(api.Group("/donors", jwtMiddleware))
	}

	if deps.DonationHandler != nil {
		deps.DonationHandler.Register(api.Group("/donations", jwtMiddleware))
	}

	if deps.ExpenseHandler != nil {
		deps.ExpenseHandler.Register(api.Group("/expenses", jwtMiddleware,
			middleware.RequireRoles("ADMIN", "STAFF")))
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard", jwtMiddleware))
	}

	if deps.AuditHandler != nil {
		deps.AuditHandler.Register(api.Group("/audit", jwtMiddleware,
			middleware.RequireRoles("ADMIN")))
	}
}

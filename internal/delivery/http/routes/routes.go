package routes

import (
	"github.com/gofiber/fiber/v3"

	"skill-path/internal/delivery/http/handler"
	v1 "skill-path/internal/delivery/http/routes/v1"
)

// Deps carries everything the route tree needs, already constructed.
// Optional pieces stay nil and their routes are skipped.
type Deps struct {
	Health *handler.HealthHandler
	V1     v1.Deps
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	if deps.Health != nil {
		deps.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), deps.V1)
}

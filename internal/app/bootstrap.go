package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"skill-path/internal/config"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/delivery/http/routes"
	v1 "skill-path/internal/delivery/http/routes/v1"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.Register(app, routes.Deps{
		Health: c.Health(),
		V1: v1.Deps{
			JWT:   c.JWT,
			Auth:  c.Auth,
			Gap:   c.Gap,
			Path:  c.Path,
			Score: c.Scores,
		},
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

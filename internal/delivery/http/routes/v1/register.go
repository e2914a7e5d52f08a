package v1

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"skill-path/internal/delivery/http/handler"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/jwt"
	"skill-path/internal/usecase"
)

// Deps are the v1 route dependencies. Auth is nil when no database is
// configured; the engine routes are then served without authentication
// rather than not at all.
type Deps struct {
	JWT   jwt.Service
	Auth  usecase.AuthUsecase
	Gap   usecase.GapUsecase
	Path  usecase.LearningPathUsecase
	Score usecase.ModelScoresUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	validate := validator.New()

	protected := r.Group("")
	if deps.Auth != nil {
		authHandler := handler.NewAuthHandler(deps.Auth, validate)
		authHandler.RegisterRoutes(r.Group("/auth"))

		authMw := middleware.NewAuthMiddleware(deps.JWT)
		protected = r.Group("", authMw.Middleware())
	}

	if deps.Gap != nil {
		handler.NewGapHandler(deps.Gap, validate).RegisterRoutes(protected)
	}
	if deps.Path != nil {
		handler.NewLearningPathHandler(deps.Path, validate).RegisterRoutes(protected)
	}
	if deps.Score != nil {
		handler.NewModelScoresHandler(deps.Score, validate).RegisterRoutes(protected)
	}
}

package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"skill-path/internal/domain/rules"
	"skill-path/internal/pkg/response"
)

// Pinger is anything whose liveness the health endpoint reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process liveness plus the state of the optional
// backends. A degraded backend never fails the check; the engine keeps
// serving without it.
type HealthHandler struct {
	store *rules.Store
	db    Pinger
	cache Pinger
}

func NewHealthHandler(store *rules.Store, db, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ruleCounts := make(map[string]int)
	for _, src := range rules.AllSources {
		ruleCounts[string(src)] = h.store.Size(src)
	}

	data := map[string]any{
		"status":      "ok",
		"rules":       ruleCounts,
		"rules_empty": h.store.Empty(),
		"database":    pingStatus(c.Context(), h.db),
		"cache":       pingStatus(c.Context(), h.cache),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

package handler

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/pkg/response"
)

// SessionCounter reports live interactive suggestion sessions; the ws hub
// implements it.
type SessionCounter interface {
	SessionCount() int
}

type HealthHandler struct {
	sessions SessionCounter
}

func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	data := fiber.Map{"ws_sessions": 0}
	if h.sessions != nil {
		data["ws_sessions"] = h.sessions.SessionCount()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

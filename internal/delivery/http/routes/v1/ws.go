package v1

import (
	"github.com/gofiber/fiber/v3"

	"vitrine/internal/ws"
)

func RegisterWS(r fiber.Router, suggestWS *ws.Handler) {
	if r == nil || suggestWS == nil {
		return
	}

	r.Get("/ws/suggest", suggestWS.HandleSuggestWS)
}

package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"

	"vitrine/internal/usecase"
)

type Handler struct {
	hub     *Hub
	suggest usecase.SuggestUsecase
	logger  *log.Logger
}

func NewHandler(hub *Hub, suggest usecase.SuggestUsecase, logger *log.Logger) *Handler {
	return &Handler{hub: hub, suggest: suggest, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleSuggestWS upgrades the connection and starts one suggestion session.
func (h *Handler) HandleSuggestWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.suggest == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		session := NewSession(h.hub, conn, h.suggest.Session(r.Context()), h.logger)
		h.hub.register(session)
		go session.WritePump()
		go session.ReadPump()
	})

	return fiberHandler(c)
}

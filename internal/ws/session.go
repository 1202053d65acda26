package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"vitrine/internal/search"
	"vitrine/internal/usecase"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxFrameSize = 1024
)

// queryFrame is what the storefront widget sends on every keystroke.
type queryFrame struct {
	Query string `json:"query"`
}

// suggestFrame is pushed back once the debounced evaluation settles.
type suggestFrame struct {
	Type       string                       `json:"type"`
	Query      string                       `json:"query"`
	Popular    bool                         `json:"popular"`
	Products   []usecase.ProductSuggestion  `json:"products"`
	Categories []usecase.CategorySuggestion `json:"categories"`
}

// Session owns one storefront visitor's suggestion stream: the websocket
// connection, the debounce controller, and the outbound queue. Keystrokes
// arrive as frames and are evaluated against the catalog snapshot pinned at
// connect time; a slow evaluation that finishes after a newer keystroke is
// discarded, so a stale result can never reach the widget.
type Session struct {
	hub        *Hub
	conn       *websocket.Conn
	suggest    usecase.SuggestUsecase
	controller *search.QueryController
	logger     *log.Logger

	sendMu sync.Mutex
	send   chan []byte
	closed bool
}

func NewSession(hub *Hub, conn *websocket.Conn, suggest usecase.SuggestUsecase, logger *log.Logger) *Session {
	s := &Session{
		hub:     hub,
		conn:    conn,
		suggest: suggest,
		logger:  logger,
		send:    make(chan []byte, 16),
	}
	s.controller = search.NewQueryController(
		search.DefaultDebounceWindow,
		s.evaluate,
		s.popular,
		s.clear,
	)
	return s
}

func (s *Session) evaluate(gen uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.suggest.Suggest(ctx, query)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("WS suggest evaluation failed | query=%q err=%v", query, err)
		}
		return
	}
	s.push(gen, query, res)
}

func (s *Session) popular(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := s.suggest.Suggest(ctx, "")
	if err != nil {
		return
	}
	s.push(gen, "", res)
}

func (s *Session) clear(gen uint64) {
	s.push(gen, "", usecase.SuggestResult{
		Products:   []usecase.ProductSuggestion{},
		Categories: []usecase.CategorySuggestion{},
	})
}

// push queues one result frame, unless a newer keystroke superseded the
// evaluation while it ran.
func (s *Session) push(gen uint64, query string, res usecase.SuggestResult) {
	if gen != s.controller.Generation() {
		return
	}
	frame := suggestFrame{
		Type:       "suggestions",
		Query:      query,
		Popular:    res.Popular,
		Products:   res.Products,
		Categories: res.Categories,
	}
	b, err := json.Marshal(frame)
	if err != nil {
		return
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- b:
	default:
		if s.logger != nil {
			s.logger.Printf("WS suggest frame dropped | reason=buffer_full")
		}
	}
}

// ReadPump feeds keystroke frames into the debounce controller until the
// connection closes.
func (s *Session) ReadPump() {
	defer func() {
		s.controller.Stop()
		s.hub.unregister(s)
		s.sendMu.Lock()
		s.closed = true
		close(s.send)
		s.sendMu.Unlock()
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(maxFrameSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				if s.logger != nil {
					s.logger.Printf("WS suggest read error | err=%v", err)
				}
			}
			return
		}

		var frame queryFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			continue
		}
		s.controller.Input(frame.Query)
	}
}

// WritePump drains the outbound queue and keeps the connection alive.
func (s *Session) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

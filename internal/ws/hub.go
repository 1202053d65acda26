package ws

import (
	"log"
	"sync"
)

// Hub tracks live suggestion sessions. Every session is independent; the hub
// only owns registration and counting.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*Session]bool
	logger   *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions: make(map[*Session]bool),
		logger:   logger,
	}
}

func (h *Hub) register(s *Session) {
	if h == nil || s == nil {
		return
	}
	h.mu.Lock()
	h.sessions[s] = true
	total := len(h.sessions)
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.Printf("WS suggest connected | total_sessions=%d", total)
	}
}

func (h *Hub) unregister(s *Session) {
	if h == nil || s == nil {
		return
	}
	h.mu.Lock()
	delete(h.sessions, s)
	total := len(h.sessions)
	h.mu.Unlock()
	if h.logger != nil {
		h.logger.Printf("WS suggest disconnected | total_sessions=%d", total)
	}
}

func (h *Hub) SessionCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

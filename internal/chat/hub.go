package chat

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub tracks open websocket chat sessions so they can be counted and closed
// on shutdown. Sessions are independent; nothing is broadcast between them.
type Hub struct {
	mu       sync.Mutex
	sessions map[*websocket.Conn]time.Time
	closed   bool
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[*websocket.Conn]time.Time)}
}

// Join registers ws. It reports false once the hub is closed.
func (h *Hub) Join(ws *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.sessions[ws] = time.Now().UTC()
	return true
}

func (h *Hub) Leave(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.sessions, ws)
	h.mu.Unlock()

	_ = ws.Close()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll sends a going-away close frame to every session and refuses new
// ones.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.sessions))
	for ws := range h.sessions {
		conns = append(conns, ws)
	}
	h.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, ws := range conns {
		_ = ws.WriteControl(websocket.CloseMessage, msg, deadline)
		_ = ws.Close()
	}
}

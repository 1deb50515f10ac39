package handlers

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Event is the JSON message sent to connected clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub fans dashboard events (month completions, capture state changes,
// saved memories) out to every connected page.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// Global hub instance
var Events = &Hub{
	conns: make(map[*websocket.Conn]bool),
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Publish sends an event to every connected client. The lock also
// serializes writes per connection.
func (h *Hub) Publish(eventType string, data interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		logger.Error("event marshal failed", "type", eventType, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warn("event write failed", "error", err)
		}
	}
}

// WebSocketUpgrade checks the upgrade request.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// HandleEvents keeps a client subscribed to dashboard events.
func HandleEvents(c *websocket.Conn) {
	Events.register(c)
	defer Events.unregister(c)

	// Keep connection alive — read messages (client sends pings/keepalives)
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

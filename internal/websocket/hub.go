package websocket

import (
	"encoding/json"
	"sync"
)

// MovementEvent is pushed to every connected operator feed whenever a
// movement is recorded.
type MovementEvent struct {
	UserID   int64  `json:"user_id"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// BroadcastMovement fans the event out to all feed connections. Slow
// clients are skipped rather than blocking the recording path.
func (h *Hub) BroadcastMovement(event MovementEvent) {
	payload, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}

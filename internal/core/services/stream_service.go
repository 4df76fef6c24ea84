package services

import (
	"log"
	"sync"

	"coopeasy/internal/core/domain"
)

// Event is one workflow notification pushed over SSE. UserID targets the
// member the record belongs to; Roles targets every connected client holding
// one of those roles. Either side may be empty.
type Event struct {
	Type    string      `json:"type"`
	UserID  uint        `json:"-"`
	Roles   []string    `json:"-"`
	Payload interface{} `json:"payload"`
}

// EventPublisher is what the workflow services see of the hub.
type EventPublisher interface {
	Publish(evt Event)
}

// StreamClient represents one connected SSE client
type StreamClient struct {
	ID      string
	UserID  uint
	Role    string
	Channel chan Event
}

// StreamService manages all SSE connections and fans events out to them.
type StreamService struct {
	mu      sync.RWMutex
	clients map[string]*StreamClient
}

// NewStreamService creates a new stream hub
func NewStreamService() *StreamService {
	return &StreamService{
		clients: make(map[string]*StreamClient),
	}
}

// Register adds a new SSE client
func (h *StreamService) Register(client *StreamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("📡 SSE client registered: %s (user=%d, role=%s) | total=%d",
		client.ID, client.UserID, client.Role, len(h.clients))
}

// Unregister removes an SSE client and closes its channel. Safe to call
// twice for the same ID.
func (h *StreamService) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Channel)
		delete(h.clients, clientID)
		log.Printf("📡 SSE client unregistered: %s | total=%d", clientID, len(h.clients))
	}
}

// Publish fans an event out to the record owner and to every client whose
// role is targeted. A client matching both ways still receives one copy.
// Slow clients are skipped, never blocked on.
func (h *StreamService) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, client := range h.clients {
		if !h.matches(client, evt) {
			continue
		}
		select {
		case client.Channel <- evt:
			sent++
		default:
			log.Printf("⚠️ SSE channel full for client %s, skipping", client.ID)
		}
	}
	if sent > 0 {
		log.Printf("📡 SSE broadcast [%s] → %d clients", evt.Type, sent)
	}
}

func (h *StreamService) matches(client *StreamClient, evt Event) bool {
	if evt.UserID != 0 && client.UserID == evt.UserID && client.Role == string(domain.RoleMember) {
		return true
	}
	for _, role := range evt.Roles {
		if client.Role == role {
			return true
		}
	}
	return false
}

// ClientCount returns the number of connected clients
func (h *StreamService) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

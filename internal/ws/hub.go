package ws

import (
	"context"
	"encoding/json"
	"sync"
)

// Event is a realtime message pushed to connected clients: an order
// snapshot or a freshly created notification.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// userEvent is an internal struct for routing events to one user's room.
type userEvent struct {
	UserID string
	Event  Event
}

// Hub maintains the set of active clients and pushes events to them.
// Each user gets a room; the operator's room additionally receives
// every order event so the admin console stays live.
type Hub struct {
	// Registered clients by user ID
	rooms map[string]map[*Client]bool

	// Inbound registrations from clients
	register   chan *Client
	unregister chan *Client

	// Outbound events to deliver
	broadcast chan *userEvent

	// Closed when Run returns; unblocks senders and client pumps
	done chan struct{}

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *userEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and blocks until the context is
// cancelled, at which point every client connection is closed.
// This should be called as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for userID, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, userID)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.userID] == nil {
				h.rooms[client.userID] = make(map[*Client]bool)
			}
			h.rooms[client.userID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.userID]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.userID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[event.UserID]

			// Marshal event to JSON once
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[event.UserID], client)
					if len(h.rooms[event.UserID]) == 0 {
						delete(h.rooms, event.UserID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendToUser delivers an event to every connection the user has open.
// Events sent after the hub shut down are dropped.
// This is the public API for the sync layer and handlers.
func (h *Hub) SendToUser(userID string, event Event) {
	select {
	case h.broadcast <- &userEvent{UserID: userID, Event: event}:
	case <-h.done:
	}
}

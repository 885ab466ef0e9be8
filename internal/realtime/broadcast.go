package realtime

import (
	"encoding/json"
	"log"

	"dapur/internal/models"
	"dapur/internal/ws"
)

// Broadcaster is the slice of the websocket hub the sync layer needs.
// The hub satisfies it; tests substitute a recorder.
type Broadcaster interface {
	SendToUser(userID string, event ws.Event)
}

// broadcastOrder fans an order snapshot out to its owner's room and to
// the operator's room. A nil hub means no websocket fan-out is wanted.
func broadcastOrder(hub Broadcaster, operatorID string, order models.Order, kind string) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("Failed to encode order %s for broadcast: %v", order.ID, err)
		return
	}
	event := ws.Event{Type: kind, Payload: payload}
	hub.SendToUser(order.UserID, event)
	if operatorID != "" && operatorID != order.UserID {
		hub.SendToUser(operatorID, event)
	}
}

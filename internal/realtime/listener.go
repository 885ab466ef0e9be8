package realtime

import (
	"encoding/json"
	"fmt"

	"dapur/internal/models"
	"dapur/internal/ws"
	"dapur/pkg/rabbitmq"

	amqp "github.com/streadway/amqp"
)

// Listener consumes broker events, reconciles them into the store and
// forwards them to the websocket hub. Order events additionally reach
// the operator's room so the admin console stays live.
type Listener struct {
	store      *Store
	hub        Broadcaster
	operatorID string
}

// NewListener creates a Listener. The hub may be nil when no websocket
// fan-out is wanted (tests, CLI tools).
func NewListener(store *Store, hub Broadcaster, operatorID string) *Listener {
	return &Listener{
		store:      store,
		hub:        hub,
		operatorID: operatorID,
	}
}

// Start registers consumers on both event queues.
func (l *Listener) Start(client *rabbitmq.Client) error {
	if err := client.Consume(rabbitmq.OrderEventsQueue, l.handleOrderMessage); err != nil {
		return fmt.Errorf("failed to consume order events: %w", err)
	}
	if err := client.Consume(rabbitmq.NotificationEventsQueue, l.handleNotificationMessage); err != nil {
		return fmt.Errorf("failed to consume notification events: %w", err)
	}
	return nil
}

func (l *Listener) handleOrderMessage(msg amqp.Delivery) error {
	var event rabbitmq.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode order event: %w", err)
	}
	var order models.Order
	if err := json.Unmarshal(event.Payload, &order); err != nil {
		return fmt.Errorf("failed to decode order snapshot: %w", err)
	}

	// Events may arrive out of creation order; the store keeps the
	// freshest snapshot per id and tells us whether this one counted.
	if !l.store.ApplyOrder(order) {
		return nil
	}

	broadcastOrder(l.hub, l.operatorID, order, event.Kind)
	return nil
}

func (l *Listener) handleNotificationMessage(msg amqp.Delivery) error {
	var event rabbitmq.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode notification event: %w", err)
	}
	var notification models.Notification
	if err := json.Unmarshal(event.Payload, &notification); err != nil {
		return fmt.Errorf("failed to decode notification snapshot: %w", err)
	}

	l.store.ApplyNotification(notification)

	if l.hub != nil {
		l.hub.SendToUser(notification.UserID, ws.Event{Type: event.Kind, Payload: event.Payload})
	}
	return nil
}

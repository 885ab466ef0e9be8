// Package notify translates order lifecycle events into human-readable
// notifications. It performs no I/O; callers persist the returned
// messages through the notification repository. The text per event kind
// is deterministic so clients and tests can rely on it.
package notify

import (
	"fmt"

	"dapur/internal/models"
)

// Message is an unsaved notification: an addressee plus the rendered
// title/message pair.
type Message struct {
	UserID  string
	Title   string
	Message string
	Type    models.NotificationType
}

// ForOrderCreated renders the notification the platform operator
// receives when a new order lands in the review queue.
func ForOrderCreated(order models.Order, operatorID string) Message {
	return Message{
		UserID:  operatorID,
		Title:   "New Order Request",
		Message: fmt.Sprintf("%s placed a new order worth %s awaiting your review.", order.CustomerName, order.Total.StringFixed(2)),
		Type:    models.NotificationOrderRequest,
	}
}

// ForTransition renders the notification for an order that just reached
// its current status, addressed to the order's owner. It must be called
// after the transition has been applied.
func ForTransition(order models.Order) (Message, error) {
	var title, message string

	switch order.Status {
	case models.StatusApproved:
		title = "Order Approved"
		message = fmt.Sprintf("The chef approved your order. The payable total is %s.", order.Total.StringFixed(2))
	case models.StatusRejected:
		title = "Order Rejected"
		message = "Unfortunately the chef could not accept your order. Please check the note on your order or contact us."
	case models.StatusPaid:
		title = "Payment Received"
		message = "We received your payment. The kitchen will start on your order shortly."
	case models.StatusProcessing:
		title = "Order In The Kitchen"
		message = "The chef has started preparing your order."
	case models.StatusReadyToDelivery:
		title = "Order Ready"
		message = "Your order is ready and will be handed to the courier soon."
	case models.StatusOnTheWay:
		title = "Order On The Way"
		message = "Your order has left the kitchen and is on its way to you."
	case models.StatusDelivered:
		title = "Order Delivered"
		message = "Your order has been delivered. Enjoy your meal!"
	default:
		return Message{}, fmt.Errorf("no notification defined for status %s", order.Status)
	}

	return Message{
		UserID:  order.UserID,
		Title:   title,
		Message: message,
		Type:    models.NotificationOrderUpdate,
	}, nil
}

// ForReview renders the notification the operator receives when a
// customer submits a review.
func ForReview(review models.Review, operatorID string) Message {
	return Message{
		UserID:  operatorID,
		Title:   "New Review",
		Message: fmt.Sprintf("%s left a %d-star review.", review.Author, review.Rating),
		Type:    models.NotificationSystem,
	}
}

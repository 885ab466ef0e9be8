package repositories

import "dapur/internal/models"

// NotificationRepository defines the interface for notification data
// access. Notifications are insert-only except for the read mark, which
// only the addressee may set.
type NotificationRepository interface {
	ListByUser(userID string) ([]models.Notification, error)
	Create(notification *models.Notification) error
	MarkRead(id string, userID string) error
}

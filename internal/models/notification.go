package models

import "time"

// NotificationType categorizes a notification for the client UI.
type NotificationType string

const (
	NotificationOrderRequest NotificationType = "ORDER_REQUEST"
	NotificationOrderUpdate  NotificationType = "ORDER_UPDATE"
	NotificationSystem       NotificationType = "SYSTEM"
)

// Notification is a message addressed to exactly one user. It is created
// as a side-effect of an order lifecycle transition or a review
// submission and is never mutated afterwards except for Read.
type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string           `json:"user_id" gorm:"index;type:varchar(64)"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20)"`
	Read      bool             `json:"read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}

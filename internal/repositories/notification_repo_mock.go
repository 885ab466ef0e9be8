package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"dapur/internal/models"

	"github.com/google/uuid"
)

// MockNotificationRepository is an in-memory implementation of
// NotificationRepository.
type MockNotificationRepository struct {
	notifications map[string]models.Notification
	mu            sync.RWMutex
}

// NewMockNotificationRepository creates a new instance of
// MockNotificationRepository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]models.Notification),
	}
}

// ListByUser returns a user's notifications, newest first.
func (r *MockNotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Create adds a new notification.
func (r *MockNotificationRepository) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	r.notifications[notification.ID] = *notification
	return nil
}

// MarkRead sets the read flag if the notification belongs to userID.
func (r *MockNotificationRepository) MarkRead(id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return fmt.Errorf("notification with ID %s: %w", id, ErrNotFound)
	}
	n.Read = true
	r.notifications[id] = n
	return nil
}

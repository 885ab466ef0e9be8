package repositories

import (
	"fmt"
	"time"

	"dapur/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMNotificationRepository is a GORM implementation of
// NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of
// GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{
		db: db,
	}
}

// ListByUser retrieves a user's notifications, newest first.
func (r *GORMNotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, &RepositoryError{Op: "list notifications", Err: err}
	}
	return notifications, nil
}

// Create inserts a new notification.
func (r *GORMNotificationRepository) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	if err := r.db.Create(notification).Error; err != nil {
		return &RepositoryError{Op: "create notification", Err: err}
	}
	return nil
}

// MarkRead sets the read flag on a notification. The userID must match
// the addressee; anyone else gets a not-found.
func (r *GORMNotificationRepository) MarkRead(id string, userID string) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return &RepositoryError{Op: "mark notification read", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

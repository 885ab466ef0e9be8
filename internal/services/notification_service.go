package services

import (
	"errors"
	"log"

	"dapur/internal/models"
	"dapur/internal/repositories"
)

// NotificationService exposes a user's notification feed.
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		repo: repo,
	}
}

// List returns the actor's notifications, newest first.
func (s *NotificationService) List(actor Actor) ([]models.Notification, error) {
	return s.repo.ListByUser(actor.ID)
}

// MarkRead marks one of the actor's notifications as read. Marking is a
// best-effort side channel: a storage failure is logged and swallowed,
// but marking someone else's notification (or a missing one) still
// surfaces as not found.
func (s *NotificationService) MarkRead(actor Actor, id string) error {
	err := s.repo.MarkRead(id, actor.ID)
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	log.Printf("Warning: failed to mark notification %s read: %v", id, err)
	return nil
}

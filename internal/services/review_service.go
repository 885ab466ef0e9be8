package services

import (
	"fmt"
	"log"

	"dapur/internal/models"
	"dapur/internal/notify"
	"dapur/internal/orders"
	"dapur/internal/repositories"
)

// ReviewService handles customer reviews and published testimonials.
// Submitting a review notifies the operator, mirroring the order
// request flow.
type ReviewService struct {
	reviewRepo       repositories.ReviewRepository
	notificationRepo repositories.NotificationRepository
	publisher        EventPublisher
	operatorID       string
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	notificationRepo repositories.NotificationRepository,
	publisher EventPublisher,
	operatorID string,
) *ReviewService {
	return &ReviewService{
		reviewRepo:       reviewRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		operatorID:       operatorID,
	}
}

// Submit stores a review and notifies the operator.
func (s *ReviewService) Submit(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return &orders.ValidationError{Reason: "rating must be between 1 and 5"}
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	message := notify.ForReview(*review, s.operatorID)
	notification := &models.Notification{
		UserID:  message.UserID,
		Title:   message.Title,
		Message: message.Message,
		Type:    message.Type,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("Warning: failed to save review notification: %v", err)
		return nil
	}
	if s.publisher != nil {
		if err := s.publisher.PublishNotificationEvent(*notification); err != nil {
			log.Printf("Warning: failed to publish review notification event: %v", err)
		}
	}
	return nil
}

// GetAllReviews retrieves every submitted review, for the admin console.
func (s *ReviewService) GetAllReviews() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

// Publish turns a review into a testimonial on the storefront.
func (s *ReviewService) Publish(reviewID string) (*models.Testimonial, error) {
	reviews, err := s.reviewRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.ID != reviewID {
			continue
		}
		testimonial := &models.Testimonial{
			Author: review.Author,
			Quote:  review.Comment,
			Rating: review.Rating,
		}
		if err := s.reviewRepo.CreateTestimonial(testimonial); err != nil {
			return nil, err
		}
		return testimonial, nil
	}
	return nil, fmt.Errorf("review with ID %s: %w", reviewID, repositories.ErrNotFound)
}

// ListTestimonials retrieves the published testimonials.
func (s *ReviewService) ListTestimonials() ([]models.Testimonial, error) {
	return s.reviewRepo.ListTestimonials()
}

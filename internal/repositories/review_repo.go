package repositories

import "dapur/internal/models"

// ReviewRepository defines the interface for review and testimonial
// data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetAll() ([]models.Review, error)
	CreateTestimonial(testimonial *models.Testimonial) error
	ListTestimonials() ([]models.Testimonial, error)
}

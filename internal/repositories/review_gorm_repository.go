package repositories

import (
	"dapur/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return &RepositoryError{Op: "create review", Err: err}
	}
	return nil
}

// GetAll retrieves all reviews.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, &RepositoryError{Op: "list reviews", Err: err}
	}
	return reviews, nil
}

// CreateTestimonial publishes a review as a testimonial.
func (r *GORMReviewRepository) CreateTestimonial(testimonial *models.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = uuid.New().String()
	}
	if err := r.db.Create(testimonial).Error; err != nil {
		return &RepositoryError{Op: "create testimonial", Err: err}
	}
	return nil
}

// ListTestimonials retrieves the published testimonials.
func (r *GORMReviewRepository) ListTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := r.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, &RepositoryError{Op: "list testimonials", Err: err}
	}
	return testimonials, nil
}

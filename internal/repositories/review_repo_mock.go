package repositories

import (
	"sync"

	"dapur/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of
// ReviewRepository.
type MockReviewRepository struct {
	reviews      map[string]models.Review
	testimonials []models.Testimonial
	mu           sync.RWMutex
}

// NewMockReviewRepository creates a new instance of
// MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// Create adds a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.reviews[review.ID] = *review
	return nil
}

// GetAll returns all reviews.
func (r *MockReviewRepository) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		list = append(list, review)
	}
	return list, nil
}

// CreateTestimonial publishes a testimonial.
func (r *MockReviewRepository) CreateTestimonial(testimonial *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if testimonial.ID == "" {
		testimonial.ID = uuid.New().String()
	}
	r.testimonials = append(r.testimonials, *testimonial)
	return nil
}

// ListTestimonials returns the published testimonials.
func (r *MockReviewRepository) ListTestimonials() ([]models.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Testimonial, len(r.testimonials))
	copy(list, r.testimonials)
	return list, nil
}

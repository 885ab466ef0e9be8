package models

import "gorm.io/gorm"

// Review is a customer rating submitted for the shop. Submitting one
// notifies the operator.
type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(64)"`
	Author     string `json:"author" validate:"required,min=2,max=100"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Testimonial is a review the operator chose to publish on the
// storefront.
type Testimonial struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Author     string `json:"author"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	gorm.Model
}

package models

import "gorm.io/gorm"

// Role distinguishes the privileged operator (the chef reviewing orders)
// from regular customers.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
)

// User represents a registered user of the storefront.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       Role   `json:"role" gorm:"type:varchar(20);default:customer" validate:"omitempty,oneof=customer operator"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address    string `json:"address,omitempty" validate:"omitempty,max=300"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

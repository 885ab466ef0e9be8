package repositories

import (
	"dapur/internal/models"
)

// OrderFilter narrows a List call. Zero values mean "no constraint".
type OrderFilter struct {
	UserID string
	Status models.OrderStatus
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	List(filter OrderFilter) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	// Orders are never deleted by the application; removal, if any, is an
	// administrative concern at the database level.
}

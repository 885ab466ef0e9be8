package services

import (
	"errors"

	"dapur/internal/models"
)

// Actor is the authenticated party driving an operation: a customer, a
// guest (identified by a synthesized guest id), or the operator.
type Actor struct {
	ID   string
	Role models.Role
}

// Operator reports whether the actor holds the privileged role.
func (a Actor) Operator() bool {
	return a.Role == models.RoleOperator
}

// ErrForbidden indicates the actor lacks the capability for the
// requested operation. Authorization is checked at the service
// boundary, not left to UI affordances.
var ErrForbidden = errors.New("forbidden")

// EventPublisher is the slice of the broker client the services need.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	PublishOrderEvent(kind string, order interface{}) error
	PublishNotificationEvent(notification interface{}) error
}

package orders

import (
	"fmt"

	"dapur/internal/models"
)

// ValidationError indicates input that is rejected before any I/O
// happens: an empty cart, a missing display name, a malformed item list.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// InvalidTransitionError indicates a requested status that is not a
// legal successor of the order's current status, or an approve attempt
// with zero approved items. The order is left unchanged.
type InvalidTransitionError struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid transition %s -> %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

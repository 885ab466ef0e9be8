package orders

import (
	"fmt"
	"strings"
	"time"

	"dapur/internal/models"

	"github.com/google/uuid"
)

// Identity is who an order is created for: a registered user, or a guest
// identified by contact details only. For guests, UserID is left empty
// and a synthetic identifier is generated so notifications and order
// lookups still have an addressee.
type Identity struct {
	UserID  string
	Name    string
	Email   string
	Phone   string
	Address string
	Guest   bool
}

// NewGuestID synthesizes a unique identifier for a guest order. The
// "guest-" prefix keeps it distinct from any real account id, and the
// timestamp plus a random suffix keeps concurrent guests from colliding.
func NewGuestID(now time.Time) string {
	return fmt.Sprintf("guest-%d-%s", now.UnixNano(), uuid.New().String()[:8])
}

// IsGuestID reports whether a user identifier was synthesized for a
// guest order.
func IsGuestID(userID string) bool {
	return strings.HasPrefix(userID, "guest-")
}

// NewOrder builds a well-formed PENDING order from a non-empty cart
// snapshot. All items start approved and the total covers every item.
// Construction has no side effects; persisting the order and notifying
// the operator are the caller's responsibility.
func NewOrder(items []models.LineItem, identity Identity, now time.Time) (*models.Order, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Reason: "cart is empty"}
	}
	if strings.TrimSpace(identity.Name) == "" {
		return nil, &ValidationError{Reason: "customer name is required"}
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("item %d: quantity must be positive", i)}
		}
		if item.Price.IsNegative() {
			return nil, &ValidationError{Reason: fmt.Sprintf("item %d: price must not be negative", i)}
		}
	}

	userID := identity.UserID
	if identity.Guest || userID == "" {
		userID = NewGuestID(now)
	}

	// Copy the items so the caller's cart slice stays untouched.
	snapshot := make([]models.LineItem, len(items))
	copy(snapshot, items)

	return &models.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerName:  identity.Name,
		CustomerEmail: identity.Email,
		CustomerPhone: identity.Phone,
		Address:       identity.Address,
		Items:         snapshot,
		Total:         AdjustedTotal(snapshot),
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

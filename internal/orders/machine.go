package orders

import (
	"time"

	"dapur/internal/models"
)

// successors is the full lifecycle: a single reviewable state, a binary
// review outcome, then a strict fulfillment chain. No transition skips a
// stage and nothing ever returns to PENDING.
var successors = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:         {models.StatusApproved, models.StatusRejected},
	models.StatusApproved:        {models.StatusPaid},
	models.StatusPaid:            {models.StatusProcessing},
	models.StatusProcessing:      {models.StatusReadyToDelivery},
	models.StatusReadyToDelivery: {models.StatusOnTheWay},
	models.StatusOnTheWay:        {models.StatusDelivered},
	models.StatusRejected:        {},
	models.StatusDelivered:       {},
}

// ValidStatus reports whether s is one of the eight lifecycle statuses.
func ValidStatus(s models.OrderStatus) bool {
	_, ok := successors[s]
	return ok
}

// CanTransition reports whether to is a legal immediate successor of
// from.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range successors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether an order in status s admits no further
// transitions.
func Terminal(s models.OrderStatus) bool {
	return len(successors[s]) == 0
}

// OperatorOnly reports whether a transition to target may only be
// driven by the operator. Payment is the one step triggered by the
// customer (or guest); everything else is the chef's call.
func OperatorOnly(target models.OrderStatus) bool {
	return target != models.StatusPaid
}

// Transition is one requested status change. AuditedItems is only
// meaningful on the PENDING -> APPROVED edge, where the audited list and
// its adjusted total become the order's permanent items and total.
type Transition struct {
	Target       models.OrderStatus
	Note         string
	AuditedItems []models.LineItem
}

// Apply checks tr against the order's current status and returns the
// updated order value. The input order is not mutated; the caller adopts
// the returned value only after the repository confirms the write, so a
// failed persist leaves no trace in memory.
func Apply(order models.Order, tr Transition, now time.Time) (models.Order, error) {
	if !ValidStatus(tr.Target) {
		return order, &ValidationError{Reason: "unknown order status: " + string(tr.Target)}
	}
	if !CanTransition(order.Status, tr.Target) {
		return order, &InvalidTransitionError{From: order.Status, To: tr.Target}
	}

	if tr.Target == models.StatusApproved {
		items := tr.AuditedItems
		if items == nil {
			items = order.Items
		}
		if err := sameComposition(order.Items, items); err != nil {
			return order, err
		}
		if ApprovedCount(items) == 0 {
			// A zero-value order should be rejected outright instead.
			return order, &InvalidTransitionError{
				From:   order.Status,
				To:     tr.Target,
				Reason: "every item is unapproved",
			}
		}
		order.Items = items
		order.Total = AdjustedTotal(items)
	}

	order.Status = tr.Target
	if tr.Note != "" {
		order.AdminNote = tr.Note
	}
	order.UpdatedAt = now
	return order, nil
}

// sameComposition verifies an audited item list still carries the same
// products and quantities as the original order; auditing may only flip
// approval marks, never add, drop or resize lines.
func sameComposition(original, audited []models.LineItem) error {
	if len(original) != len(audited) {
		return &ValidationError{Reason: "audited items do not match the order's items"}
	}
	for i := range original {
		if original[i].ProductID != audited[i].ProductID || original[i].Quantity != audited[i].Quantity {
			return &ValidationError{Reason: "audited items do not match the order's items"}
		}
	}
	return nil
}

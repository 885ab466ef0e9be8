package orders

import (
	"fmt"

	"dapur/internal/models"

	"github.com/shopspring/decimal"
)

// AdjustedTotal sums price*quantity over items whose approval mark is
// not explicitly false. It is a pure function: order-independent, and 0
// for an all-rejected list.
func AdjustedTotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.Approved() {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ApprovedCount returns how many items currently count toward the
// payable total.
func ApprovedCount(items []models.LineItem) int {
	n := 0
	for _, item := range items {
		if item.Approved() {
			n++
		}
	}
	return n
}

// ToggleItemApproval flips the approval mark on one line item and
// returns the updated item list for the caller to submit together with
// an approve transition. It does not persist anything. Auditing is only
// legal while the order is still PENDING; once it has moved on, the
// item list is frozen.
func ToggleItemApproval(order *models.Order, index int) ([]models.LineItem, error) {
	if order.Status != models.StatusPending {
		return nil, &InvalidTransitionError{
			From:   order.Status,
			To:     order.Status,
			Reason: "items can only be audited while the order is pending",
		}
	}
	if index < 0 || index >= len(order.Items) {
		return nil, &ValidationError{Reason: fmt.Sprintf("item index %d out of range", index)}
	}

	items := make([]models.LineItem, len(order.Items))
	copy(items, order.Items)

	flipped := !items[index].Approved()
	items[index].IsApproved = &flipped
	return items, nil
}

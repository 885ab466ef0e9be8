package orders_test

import (
	"testing"
	"time"

	"dapur/internal/models"
	"dapur/internal/orders"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustedTotal(t *testing.T) {
	items := sampleItems()

	// All approved equals the cart's original total.
	assert.True(t, decimal.NewFromFloat(42.00).Equal(orders.AdjustedTotal(items)))

	// Excludes explicitly rejected items.
	items[1].IsApproved = boolPtr(false)
	assert.True(t, decimal.NewFromFloat(30.00).Equal(orders.AdjustedTotal(items)))

	// A nil mark counts as approved.
	items[1].IsApproved = nil
	items[0].IsApproved = boolPtr(true)
	assert.True(t, decimal.NewFromFloat(42.00).Equal(orders.AdjustedTotal(items)))
}

func TestAdjustedTotal_OrderIndependent(t *testing.T) {
	items := sampleItems()
	items[0].IsApproved = boolPtr(false)

	reversed := []models.LineItem{items[1], items[0]}
	assert.True(t, orders.AdjustedTotal(items).Equal(orders.AdjustedTotal(reversed)))
}

func TestAdjustedTotal_AllRejected(t *testing.T) {
	items := sampleItems()
	for i := range items {
		items[i].IsApproved = boolPtr(false)
	}
	assert.True(t, orders.AdjustedTotal(items).IsZero())
}

func TestToggleItemApproval(t *testing.T) {
	order, err := orders.NewOrder(sampleItems(), orders.Identity{UserID: "user-1", Name: "Siti"}, time.Now())
	assert.NoError(t, err)

	items, err := orders.ToggleItemApproval(order, 1)
	assert.NoError(t, err)
	assert.False(t, items[1].Approved())
	assert.True(t, decimal.NewFromFloat(30.00).Equal(orders.AdjustedTotal(items)))

	// The order itself is untouched until the approve transition lands.
	assert.True(t, order.Items[1].Approved())
	assert.True(t, decimal.NewFromFloat(42.00).Equal(order.Total))
}

func TestToggleItemApproval_RoundTrip(t *testing.T) {
	order, err := orders.NewOrder(sampleItems(), orders.Identity{UserID: "user-1", Name: "Siti"}, time.Now())
	assert.NoError(t, err)
	originalTotal := orders.AdjustedTotal(order.Items)

	once, err := orders.ToggleItemApproval(order, 0)
	assert.NoError(t, err)

	order.Items = once
	twice, err := orders.ToggleItemApproval(order, 0)
	assert.NoError(t, err)

	assert.True(t, twice[0].Approved())
	assert.True(t, originalTotal.Equal(orders.AdjustedTotal(twice)))
}

func TestToggleItemApproval_OnlyWhilePending(t *testing.T) {
	order, err := orders.NewOrder(sampleItems(), orders.Identity{UserID: "user-1", Name: "Siti"}, time.Now())
	assert.NoError(t, err)
	order.Status = models.StatusApproved

	_, err = orders.ToggleItemApproval(order, 0)

	var transitionErr *orders.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestToggleItemApproval_IndexOutOfRange(t *testing.T) {
	order, err := orders.NewOrder(sampleItems(), orders.Identity{UserID: "user-1", Name: "Siti"}, time.Now())
	assert.NoError(t, err)

	_, err = orders.ToggleItemApproval(order, 5)

	var validationErr *orders.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

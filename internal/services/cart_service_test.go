package services_test

import (
	"fmt"
	"testing"

	"dapur/internal/models"
	"dapur/internal/orders"
	"dapur/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartService(orderRepo *MockOrderRepo, notificationRepo *MockNotificationRepo) *services.CartService {
	orderService := services.NewOrderService(orderRepo, catalogRepo(), notificationRepo, nil, operatorID)
	return services.NewCartService(orderService)
}

func TestCartService_AddItemMergesQuantity(t *testing.T) {
	cart := newCartService(new(MockOrderRepo), new(MockNotificationRepo))

	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 1})
	assert.NoError(t, err)
	lines, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 2})
	assert.NoError(t, err)

	assert.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := newCartService(new(MockOrderRepo), new(MockNotificationRepo))

	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 0})

	var validationErr *orders.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := newCartService(new(MockOrderRepo), new(MockNotificationRepo))
	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 2})
	assert.NoError(t, err)

	lines, err := cart.UpdateQuantity("user-1", "r1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, lines[0].Quantity)

	// Zero removes the line.
	lines, err = cart.UpdateQuantity("user-1", "r1", 0)
	assert.NoError(t, err)
	assert.Empty(t, lines)

	// Updating a product that is not in the cart fails.
	_, err = cart.UpdateQuantity("user-1", "r1", 1)
	var validationErr *orders.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	cart := newCartService(new(MockOrderRepo), new(MockNotificationRepo))

	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 1})
	assert.NoError(t, err)

	assert.Empty(t, cart.Get("user-2"))
	assert.Len(t, cart.Get("user-1"), 1)
}

func TestCartService_Checkout(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	notificationRepo := new(MockNotificationRepo)
	cart := newCartService(orderRepo, notificationRepo)

	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	notificationRepo.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil).Once()

	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 2})
	assert.NoError(t, err)
	_, err = cart.AddItem("user-1", models.CartItem{ProductID: "s1", Quantity: 1})
	assert.NoError(t, err)

	order, err := cart.Checkout("user-1", orders.Identity{UserID: "user-1", Name: "Siti"})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	// Checkout empties the cart.
	assert.Empty(t, cart.Get("user-1"))
	orderRepo.AssertExpectations(t)
}

func TestCartService_Checkout_FailureKeepsCart(t *testing.T) {
	orderRepo := new(MockOrderRepo)
	cart := newCartService(orderRepo, new(MockNotificationRepo))

	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("disk full")).Once()

	_, err := cart.AddItem("user-1", models.CartItem{ProductID: "r1", Quantity: 1})
	assert.NoError(t, err)

	_, err = cart.Checkout("user-1", orders.Identity{UserID: "user-1", Name: "Siti"})
	assert.Error(t, err)

	// The user can fix the problem and retry.
	assert.Len(t, cart.Get("user-1"), 1)
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	cart := newCartService(new(MockOrderRepo), new(MockNotificationRepo))

	_, err := cart.Checkout("user-1", orders.Identity{UserID: "user-1", Name: "Siti"})

	var validationErr *orders.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

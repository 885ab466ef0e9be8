package services

import (
	"sync"

	"dapur/internal/models"
	"dapur/internal/orders"
)

// CartService keeps per-user cart lines in memory until checkout. Carts
// are presentation state, not money: losing one on restart is
// acceptable, so no repository backs them.
type CartService struct {
	orderService *OrderService
	carts        map[string][]models.CartItem
	mu           sync.RWMutex
}

// NewCartService creates a new CartService.
func NewCartService(orderService *OrderService) *CartService {
	return &CartService{
		orderService: orderService,
		carts:        make(map[string][]models.CartItem),
	}
}

// Get returns the user's current cart lines.
func (s *CartService) Get(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]models.CartItem, len(s.carts[userID]))
	copy(lines, s.carts[userID])
	return lines
}

// AddItem adds a line, merging quantity into an existing line for the
// same product.
func (s *CartService) AddItem(userID string, item models.CartItem) ([]models.CartItem, error) {
	if item.Quantity <= 0 {
		return nil, &orders.ValidationError{Reason: "quantity must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity += item.Quantity
			s.carts[userID] = lines
			return append([]models.CartItem(nil), lines...), nil
		}
	}
	lines = append(lines, item)
	s.carts[userID] = lines
	return append([]models.CartItem(nil), lines...), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(userID string, productID string, quantity int) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
		}
		s.carts[userID] = lines
		return append([]models.CartItem(nil), lines...), nil
	}
	return nil, &orders.ValidationError{Reason: "product is not in the cart"}
}

// RemoveItem drops a line from the cart.
func (s *CartService) RemoveItem(userID string, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	s.carts[userID] = lines
	return append([]models.CartItem(nil), lines...)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Checkout submits the user's cart as an order and empties the cart on
// success. A failed submission keeps the cart so the user can retry.
func (s *CartService) Checkout(userID string, identity orders.Identity) (*models.Order, error) {
	s.mu.RLock()
	lines := append([]models.CartItem(nil), s.carts[userID]...)
	s.mu.RUnlock()

	order, err := s.orderService.CreateOrder(lines, identity)
	if err != nil {
		return nil, err
	}
	s.Clear(userID)
	return order, nil
}

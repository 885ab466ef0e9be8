// Package realtime keeps a client session's view of orders and
// notifications consistent with the backend. Push events from the
// broker and a periodic polling fallback both funnel into the same
// Store, which reconciles snapshots by id instead of appending blindly.
package realtime

import (
	"sort"
	"sync"

	"dapur/internal/models"
)

// Store is the session-local order/notification cache. Every incoming
// snapshot is authoritative for its id; conflicts between push and
// polling resolve last-writer-by-updatedAt.
type Store struct {
	mu            sync.RWMutex
	orders        map[string]models.Order
	notifications map[string]models.Notification
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		orders:        make(map[string]models.Order),
		notifications: make(map[string]models.Notification),
	}
}

// ApplyOrder inserts or replaces the snapshot keyed by order id, so an
// INSERT event followed by a full-row UPDATE never yields a duplicate.
// A snapshot older than what the store already holds is discarded.
// Returns whether the snapshot was applied.
func (s *Store) ApplyOrder(order models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.orders[order.ID]
	if ok && existing.UpdatedAt.After(order.UpdatedAt) {
		return false
	}
	s.orders[order.ID] = order
	return true
}

// GetOrder returns the cached snapshot for an order id.
func (s *Store) GetOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

// Orders returns the cached orders, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		list = append(list, order)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

// ApplyNotification inserts or replaces a notification snapshot.
// Notifications only ever change their read flag, so replace-by-id is
// always safe.
func (s *Store) ApplyNotification(notification models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[notification.ID] = notification
}

// Notifications returns the cached notifications for one user, newest
// first.
func (s *Store) Notifications(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

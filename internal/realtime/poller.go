package realtime

import (
	"context"
	"log"
	"time"

	"dapur/internal/repositories"
	"dapur/pkg/rabbitmq"
)

// DefaultPollInterval is the fallback re-fetch period. Push delivery is
// not guaranteed reliable, so the poller reconciles the store with the
// repository on a fixed schedule.
const DefaultPollInterval = 30 * time.Second

// Poller periodically re-fetches orders, applies them through the
// store's reconciliation rule and pushes the snapshots that changed to
// the websocket hub, so a client whose push event got lost still sees
// the update. Repository errors during a poll are logged and skipped;
// the next tick tries again.
type Poller struct {
	store      *Store
	orders     repositories.OrderRepository
	hub        Broadcaster
	operatorID string
	interval   time.Duration
}

// NewPoller creates a Poller. The hub may be nil when no websocket
// fan-out is wanted. A non-positive interval falls back to
// DefaultPollInterval.
func NewPoller(store *Store, orders repositories.OrderRepository, hub Broadcaster, operatorID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		store:      store,
		orders:     orders,
		hub:        hub,
		operatorID: operatorID,
		interval:   interval,
	}
}

// Run polls until the context is cancelled. It refreshes once
// immediately so a fresh session does not wait a full interval.
// This should be called as a goroutine: go poller.Run(ctx)
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh()
		}
	}
}

// Refresh fetches all orders, reconciles them into the store and
// broadcasts every snapshot the session did not already hold.
// Best-effort: a failed fetch leaves the current cache untouched.
func (p *Poller) Refresh() {
	list, err := p.orders.List(repositories.OrderFilter{})
	if err != nil {
		log.Printf("Polling refresh failed: %v", err)
		return
	}
	for _, order := range list {
		known, seen := p.store.GetOrder(order.ID)
		if !p.store.ApplyOrder(order) {
			continue
		}
		// Re-applying the snapshot we already hold is a no-op for
		// clients; only first-seen and newer rows go out.
		if seen && !order.UpdatedAt.After(known.UpdatedAt) {
			continue
		}
		broadcastOrder(p.hub, p.operatorID, order, rabbitmq.KindOrderUpdated)
	}
}

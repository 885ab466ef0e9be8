package realtime_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"dapur/internal/models"
	"dapur/internal/realtime"
	"dapur/internal/repositories"
	"dapur/internal/ws"
	"dapur/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
)

// recordingBroadcaster captures hub fan-out for inspection.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events map[string][]ws.Event
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{events: make(map[string][]ws.Event)}
}

func (b *recordingBroadcaster) SendToUser(userID string, event ws.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[userID] = append(b.events[userID], event)
}

func (b *recordingBroadcaster) eventsFor(userID string) []ws.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ws.Event(nil), b.events[userID]...)
}

func TestPoller_RefreshReconcilesStore(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	order := orderAt("order-1", models.StatusPending, time.Now())
	assert.NoError(t, repo.Create(&order))

	store := realtime.NewStore()
	poller := realtime.NewPoller(store, repo, nil, "", realtime.DefaultPollInterval)

	poller.Refresh()

	got, ok := store.GetOrder("order-1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusPending, got.Status)

	// The backend moves the order on; the next poll catches up.
	order.Status = models.StatusApproved
	order.UpdatedAt = order.UpdatedAt.Add(time.Second)
	assert.NoError(t, repo.Update(&order))

	poller.Refresh()

	got, _ = store.GetOrder("order-1")
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Len(t, store.Orders(), 1)
}

func TestPoller_RefreshDoesNotRegressFresherState(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	stale := orderAt("order-1", models.StatusPending, time.Now().Add(-time.Minute))
	assert.NoError(t, repo.Create(&stale))

	store := realtime.NewStore()
	// A push event already delivered a newer snapshot.
	store.ApplyOrder(orderAt("order-1", models.StatusApproved, time.Now()))

	realtime.NewPoller(store, repo, nil, "", 0).Refresh()

	got, _ := store.GetOrder("order-1")
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestPoller_RefreshDeliversDroppedPush(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	now := time.Now()
	order := orderAt("order-1", models.StatusPending, now)
	assert.NoError(t, repo.Create(&order))

	store := realtime.NewStore()
	hub := newRecordingBroadcaster()
	poller := realtime.NewPoller(store, repo, hub, "operator-1", realtime.DefaultPollInterval)

	// The session never saw this order; the first poll pushes it.
	poller.Refresh()
	owned := hub.eventsFor("user-1")
	assert.Len(t, owned, 1)
	assert.Equal(t, rabbitmq.KindOrderUpdated, owned[0].Type)
	assert.Len(t, hub.eventsFor("operator-1"), 1)

	var snapshot models.Order
	assert.NoError(t, json.Unmarshal(owned[0].Payload, &snapshot))
	assert.Equal(t, "order-1", snapshot.ID)
	assert.Equal(t, models.StatusPending, snapshot.Status)

	// Nothing changed; the next poll stays quiet.
	poller.Refresh()
	assert.Len(t, hub.eventsFor("user-1"), 1)

	// The broker drops the approval event; polling catches it up.
	order.Status = models.StatusApproved
	order.UpdatedAt = now.Add(time.Second)
	assert.NoError(t, repo.Update(&order))

	poller.Refresh()
	owned = hub.eventsFor("user-1")
	assert.Len(t, owned, 2)
	assert.NoError(t, json.Unmarshal(owned[1].Payload, &snapshot))
	assert.Equal(t, models.StatusApproved, snapshot.Status)
	assert.Len(t, hub.eventsFor("operator-1"), 2)
}

func TestPoller_RunStopsOnCancel(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	order := orderAt("order-1", models.StatusPending, time.Now())
	assert.NoError(t, repo.Create(&order))

	store := realtime.NewStore()
	poller := realtime.NewPoller(store, repo, nil, "", 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	// The immediate refresh lands before the first tick.
	assert.Eventually(t, func() bool {
		_, ok := store.GetOrder("order-1")
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

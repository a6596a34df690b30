package broadcast

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
)

// Subscriber is one live connection. Deliver must not block: it reports false when
// the subscriber cannot take the payload, and the hub then evicts it.
type Subscriber interface {
	ID() string
	Deliver(payload []byte) bool
	Evict()
}

// Hub fans payloads out to the members of a named group inside one process.
type Hub struct {
	mu     sync.RWMutex
	groups map[string]map[string]Subscriber
}

func NewHub() *Hub {
	return &Hub{
		groups: make(map[string]map[string]Subscriber),
	}
}

// Subscribe is idempotent per subscriber id.
func (h *Hub) Subscribe(group string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		members = make(map[string]Subscriber)
		h.groups[group] = members
	}
	members[sub.ID()] = sub
}

func (h *Hub) Unsubscribe(group string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		return
	}
	if current, ok := members[sub.ID()]; !ok || current != sub {
		return
	}

	delete(members, sub.ID())
	if len(members) == 0 {
		delete(h.groups, group)
	}
}

// Publish delivers payload to every current member of group, the sender's own connection included.
func (h *Hub) Publish(ctx context.Context, group string, payload []byte) error {
	delivered := h.Deliver(group, payload)

	zerolog.Ctx(ctx).Debug().
		Str("group", group).
		Int("delivered", delivered).
		Msg("frame published")

	return nil
}

// Deliver hands payload to the local members of group and returns how many accepted it.
// Members that refuse are unsubscribed and evicted.
func (h *Hub) Deliver(group string, payload []byte) int {
	h.mu.RLock()
	members := make([]Subscriber, 0, len(h.groups[group]))
	for _, sub := range h.groups[group] {
		members = append(members, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range members {
		if sub.Deliver(payload) {
			delivered++
			continue
		}

		h.Unsubscribe(group, sub)
		sub.Evict()
		metrics.SubscribersEvicted.Inc()
	}
	metrics.FramesDelivered.Add(float64(delivered))

	return delivered
}

// Members counts the subscribers of group in this process.
func (h *Hub) Members(group string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups[group])
}

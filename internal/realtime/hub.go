package realtime

import (
	"sync"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

const subscriberBuffer = 16

// Hub fans freshly created notifications out to connected subscribers.
// A user may hold several subscriptions at once (multiple tabs); each
// gets its own buffered channel. Delivery is best effort: a subscriber
// whose buffer is full misses the message.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan *entity.Notification]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan *entity.Notification]struct{}),
	}
}

var _ usecasecontract.IRealtimePublisher = (*Hub)(nil)

// Subscribe registers a channel for the user's notifications. The
// returned cancel function removes the subscription and must be called
// when the consumer goes away.
func (h *Hub) Subscribe(userID string) (<-chan *entity.Notification, func()) {
	ch := make(chan *entity.Notification, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan *entity.Notification]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers a notification to every live subscription of the
// user. Non-blocking: slow consumers drop the message instead of
// stalling the publisher.
func (h *Hub) Publish(userID string, n *entity.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[userID] {
		select {
		case ch <- n:
		default:
		}
	}
}

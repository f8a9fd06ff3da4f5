package broadcast

import (
	"auction-coordinator/internal/models"
	"auction-coordinator/utils"
	"context"
	"sync"
	"sync/atomic"
)

// Hub is a queue-backed multicast of auction payloads
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan models.BroadcastPayload // key: subscriber ID
	closed      bool

	queue      chan models.BroadcastPayload
	bufferSize int
	dropped    atomic.Uint64
}

// NewHub creates a hub whose publish queue holds queueSize payloads and whose
// subscriber channels each hold subscriberBuffer payloads.
func NewHub(queueSize, subscriberBuffer int) *Hub {
	return &Hub{
		subscribers: make(map[string]chan models.BroadcastPayload),
		queue:       make(chan models.BroadcastPayload, queueSize),
		bufferSize:  subscriberBuffer,
	}
}

// Publish enqueues payload for delivery. It never blocks.
func (h *Hub) Publish(payload models.BroadcastPayload) {
	select {
	case h.queue <- payload:
	default:
		h.dropped.Add(1)
		utils.Warn("broadcast queue full, dropping payload", map[string]any{
			"version": payload.Version,
			"kind":    payload.Kind,
		})
	}
}

// Run delivers queued payloads until ctx is cancelled, then closes every
// subscriber channel.
func (h *Hub) Run(ctx context.Context) error {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload := <-h.queue:
			h.fanOut(payload)
		}
	}
}

// Subscribe registers a new viewer. The returned channel is closed by
// Unsubscribe or when the hub stops.
func (h *Hub) Subscribe() (string, <-chan models.BroadcastPayload) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := utils.GenerateID()
	ch := make(chan models.BroadcastPayload, h.bufferSize)
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a viewer and closes its channel.
// Returns true if the subscriber was found.
func (h *Hub) Unsubscribe(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subscribers[id]
	if !ok {
		return false
	}
	delete(h.subscribers, id)
	close(ch)
	return true
}

// SubscriberCount returns the number of connected viewers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Dropped returns how many deliveries were skipped because a queue was full
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) fanOut(payload models.BroadcastPayload) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- payload:
		default:
			h.dropped.Add(1)
			utils.Warn("subscriber too slow, dropping payload", map[string]any{
				"subscriber_id": id,
				"version":       payload.Version,
			})
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
	h.closed = true
}

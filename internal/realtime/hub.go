package realtime

import (
	"errors"
	"sync"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/pkg/logger"
	"github.com/prkservices/booking-service/pkg/metrics"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-session channel depth. A subscriber that
// cannot keep up loses events; there is no backpressure or replay.
const subscriberBuffer = 16

// Hub is the in-process publish/subscribe channel for admin and customer
// sessions. It is injected where broadcasting is needed and owns its
// lifecycle: subscriptions are refused after Stop.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan entity.Event
	stopped     bool
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewHub creates a hub with no subscribers
func NewHub(logger logger.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		subscribers: make(map[string]chan entity.Event),
		logger:      logger,
		metrics:     m,
	}
}

// Subscribe attaches a new session and returns its id and event channel
func (h *Hub) Subscribe() (string, <-chan entity.Event, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return "", nil, errors.New("hub is stopped")
	}

	id := uuid.NewString()
	ch := make(chan entity.Event, subscriberBuffer)
	h.subscribers[id] = ch

	h.logger.Debug("Session subscribed", "subscriberId", id, "subscribers", len(h.subscribers))
	return id, ch, nil
}

// Unsubscribe detaches a session and closes its channel
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
		h.logger.Debug("Session unsubscribed", "subscriberId", id, "subscribers", len(h.subscribers))
	}
}

// Publish delivers an event to every currently attached subscriber. Each
// subscriber sees its own events in publish order; a full buffer drops the
// event for that subscriber only.
func (h *Hub) Publish(event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.stopped {
		return
	}

	e := entity.Event{Name: event, Payload: payload}
	for id, ch := range h.subscribers {
		select {
		case ch <- e:
		default:
			h.logger.Warn("Dropping event for slow subscriber", "subscriberId", id, "event", event)
		}
	}

	if h.metrics != nil {
		h.metrics.EventsPublished.WithLabelValues(event).Inc()
	}
}

// Stop closes all subscriber channels and refuses further subscriptions
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
	h.logger.Info("Realtime hub stopped")
}

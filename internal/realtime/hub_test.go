package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/prkservices/booking-service/internal/domain/entity"
	"github.com/prkservices/booking-service/pkg/logger"
)

func newTestHub() *Hub {
	return NewHub(logger.NewLogger(), nil)
}

func receive(t *testing.T, ch <-chan entity.Event) entity.Event {
	t.Helper()
	select {
	case e, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return entity.Event{}
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := newTestHub()
	defer h.Stop()

	_, ch1, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	_, ch2, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	h.Publish(entity.EventNewBooking, map[string]interface{}{"bookingId": "b-1"})

	for _, ch := range []<-chan entity.Event{ch1, ch2} {
		e := receive(t, ch)
		if e.Name != entity.EventNewBooking {
			t.Errorf("expected %s, got %s", entity.EventNewBooking, e.Name)
		}
	}
}

func TestHub_PerSubscriberOrdering(t *testing.T) {
	h := newTestHub()
	defer h.Stop()

	_, ch, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	events := []string{entity.EventNewBooking, entity.EventBookingStatusUpdate, entity.EventPaymentStatusUpdate}
	for _, name := range events {
		h.Publish(name, nil)
	}
	for _, want := range events {
		if got := receive(t, ch).Name; got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestHub_SlowSubscriberDropsWithoutBlocking(t *testing.T) {
	h := newTestHub()
	defer h.Stop()

	_, slow, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+10; i++ {
			h.Publish(entity.EventNewBooking, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffer holds the first events; the overflow was dropped.
	if got := len(slow); got != subscriberBuffer {
		t.Fatalf("expected %d buffered events, got %d", subscriberBuffer, got)
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := newTestHub()
	defer h.Stop()

	id, ch, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	h.Unsubscribe(id)

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after unsubscribe")
	}

	// Publishing afterwards must not panic on the closed channel.
	h.Publish(entity.EventNewBooking, nil)

	// Double unsubscribe is a no-op.
	h.Unsubscribe(id)
}

func TestHub_Stop(t *testing.T) {
	h := newTestHub()

	_, ch, err := h.Subscribe()
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	h.Stop()

	if _, ok := <-ch; ok {
		t.Fatal("expected subscriber channel closed on stop")
	}
	if _, _, err := h.Subscribe(); err == nil {
		t.Fatal("expected subscribe to fail after stop")
	}

	// Publish and a second Stop are no-ops.
	h.Publish(entity.EventNewBooking, nil)
	h.Stop()
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	h := newTestHub()
	defer h.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, ch, err := h.Subscribe()
			if err != nil {
				t.Errorf("subscribe: %v", err)
				return
			}
			for j := 0; j < 50; j++ {
				h.Publish(entity.EventBookingStatusUpdate, j)
			}
			// Drain whatever arrived, then detach.
			for len(ch) > 0 {
				<-ch
			}
			h.Unsubscribe(id)
		}()
	}
	wg.Wait()
}

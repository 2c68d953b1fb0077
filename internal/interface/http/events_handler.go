package http

import (
	"io"
	"net/http"

	"github.com/prkservices/booking-service/internal/realtime"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams booking events to connected clients over SSE
type EventsHandler struct {
	hub *realtime.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles GET /api/events. The connection stays open until the
// client disconnects or the hub shuts down.
func (h *EventsHandler) Stream(c *gin.Context) {
	id, events, err := h.hub.Subscribe()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Event stream is shutting down.",
		})
		return
	}
	defer h.hub.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

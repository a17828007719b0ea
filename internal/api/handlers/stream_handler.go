package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aashray-care/aashray-backend/internal/api/middleware"
	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/providers"
	"github.com/aashray-care/aashray-backend/internal/infrastructure/observability"
)

// StreamHandler handles Server-Sent Events for real-time booking updates
type StreamHandler struct {
	eventBus  providers.EventBus
	heartbeat time.Duration
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(eventBus providers.EventBus) *StreamHandler {
	return &StreamHandler{
		eventBus:  eventBus,
		heartbeat: 30 * time.Second,
	}
}

// StreamBookingUpdates handles SSE connections for the authenticated user's
// booking lifecycle events
// GET /api/bookings/events
func (h *StreamHandler) StreamBookingUpdates(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.eventBus == nil {
		respondWithError(w, http.StatusServiceUnavailable, "event streaming is not available")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventChan, err := h.eventBus.Subscribe(r.Context(), providers.EventChannelBookings)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().
			Err(err).
			Str("channel", providers.EventChannelBookings).
			Msg("Failed to subscribe to booking events")
		respondWithError(w, http.StatusInternalServerError, "failed to subscribe to booking events")
		return
	}

	clientChan := make(chan *entities.BookingEvent, 10)
	go h.forwardUserEvents(r.Context(), userID, eventChan, clientChan)

	h.sendEvent(w, "connected", map[string]interface{}{
		"user_id":   userID,
		"timestamp": time.Now().UTC(),
	})
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now().UTC(),
			})
			flusher.Flush()
		case event, ok := <-clientChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.EventType), event)
			flusher.Flush()
		}
	}
}

// forwardUserEvents forwards the user's own events from the bus to the client
// channel. Events for other users are dropped.
func (h *StreamHandler) forwardUserEvents(ctx context.Context, userID string, eventChan <-chan *entities.BookingEvent, clientChan chan<- *entities.BookingEvent) {
	defer close(clientChan)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil || event.UserID != userID {
				continue
			}
			select {
			case clientChan <- event:
			default:
				// Client channel full, skip event
			}
		}
	}
}

// sendEvent writes one SSE event to the client
func (h *StreamHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		observability.GetLogger().Warn().Err(err).Msg("Failed to marshal stream event")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/marquee-live/marquee/internal/adapters/catalog"
	"github.com/marquee-live/marquee/pkg/logger"
)

// EventsDependencies defines the interface for event detail lookups.
type EventsDependencies interface {
	EventDetail(ctx context.Context, id string) (EventDetail, error)
}

// EventsHandler handles event detail requests.
type EventsHandler struct {
	deps EventsDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventsDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleGetEvent handles GET /events/{id} requests.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /events/
	id := strings.TrimPrefix(r.URL.Path, "/events/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, ErrBadRequest)
		return
	}
	detail, err := h.deps.EventDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		logger.Get().Error(r.Context(), "event detail lookup failed",
			logger.String("eventId", id),
			logger.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

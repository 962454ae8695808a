// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/marquee-live/marquee/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend scores the catalog against q and returns the top page.
	Recommend(ctx context.Context, q Query) ([]Recommendation, error)

	// EventDetail returns the expanded view of one event.
	EventDetail(ctx context.Context, id string) (EventDetail, error)

	// Local-list operations back the liked/followed/tickets surfaces.
	AddToList(ctx context.Context, list, id string) bool
	RemoveFromList(ctx context.Context, list, id string)
	ListMembers(ctx context.Context, list string) []string
}

// Read shapes mirrored from the domain so handlers and their callers never
// import domain packages directly.
type (
	Query          = types.Query
	Recommendation = types.Recommendation
	EventDetail    = types.EventDetail
)

// Server wires HTTP routes for the business API.
type Server struct {
	bandCenter float64
	bandWidth  float64

	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	eventsHandler    *EventsHandler
	listsHandler     *ListsHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithBandDefaults overrides the price band applied when a query carries
// none. Non-positive widths are accepted; they mean exact-price matching.
func WithBandDefaults(center, width float64) ServerOption {
	return func(s *Server) {
		s.bandCenter = center
		s.bandWidth = width
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		bandCenter: defaultBandCenter,
		bandWidth:  defaultBandWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.recommendHandler = NewRecommendHandler(deps, s.bandCenter, s.bandWidth)
	s.eventsHandler = NewEventsHandler(deps)
	s.listsHandler = NewListsHandler(deps)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendHandler.HandleGetRecommendations, "recommendations"))
	mux.HandleFunc("/events/", MetricsMiddleware(s.eventsHandler.HandleGetEvent, "events"))
	mux.HandleFunc("/lists/", MetricsMiddleware(s.listsHandler.HandleLists, "lists"))
}

// errorResponse is the single failure shape every endpoint returns.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

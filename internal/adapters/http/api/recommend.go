package api

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/marquee-live/marquee/pkg/logger"
)

// Defaults applied when a query parameter is absent or unparseable. The
// page size cap lives in the query service, not here.
const (
	defaultBandCenter = 30.0
	defaultBandWidth  = 10.0
)

// RecommendDependencies defines the interface for recommendation queries.
type RecommendDependencies interface {
	Recommend(ctx context.Context, q Query) ([]Recommendation, error)
}

// RecommendHandler handles recommendation page requests.
type RecommendHandler struct {
	deps       RecommendDependencies
	bandCenter float64
	bandWidth  float64
}

// NewRecommendHandler creates a new recommendation handler with the band
// defaults applied when a query omits them.
func NewRecommendHandler(deps RecommendDependencies, bandCenter, bandWidth float64) *RecommendHandler {
	return &RecommendHandler{deps: deps, bandCenter: bandCenter, bandWidth: bandWidth}
}

// HandleGetRecommendations handles GET /recommendations requests.
//
// Accepted parameters, with camelCase and snake_case spellings:
//
//	likedGenres | liked_genres  comma-separated genre names
//	bandCenter  | band_center   price band center, default 30
//	bandWidth   | band_width    price band width, default 10
//	limit                       page size, floored at 1 when given; default
//	                            and cap applied downstream
//
// Malformed values never fail the request; they fall back to defaults.
func (h *RecommendHandler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	params := r.URL.Query()
	q := Query{
		LikedGenres: splitGenres(firstParam(params, "likedGenres", "liked_genres")),
		BandCenter:  floatParam(params, h.bandCenter, "bandCenter", "band_center"),
		BandWidth:   floatParam(params, h.bandWidth, "bandWidth", "band_width"),
		Limit:       limitParam(params, "limit"),
	}

	rows, err := h.deps.Recommend(r.Context(), q)
	if err != nil {
		logger.Get().Error(r.Context(), "recommendation query failed",
			logger.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// firstParam returns the value of the first name present in params.
func firstParam(params url.Values, names ...string) string {
	for _, name := range names {
		if params.Has(name) {
			return params.Get(name)
		}
	}
	return ""
}

// splitGenres parses a comma-separated genre list, dropping blanks.
func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// floatParam parses the first present spelling as a finite float, falling
// back to def on absence or garbage.
func floatParam(params url.Values, def float64, names ...string) float64 {
	raw := strings.TrimSpace(firstParam(params, names...))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// limitParam parses the requested page size. Absence and garbage mean
// "unspecified" (zero, the downstream default applies); any numeric value,
// fractional included, is truncated and floored at one so a request can
// never opt out of paging. The upper cap lives in the query service.
func limitParam(params url.Values, names ...string) int {
	raw := strings.TrimSpace(firstParam(params, names...))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	n := int(v)
	if n < 1 {
		return 1
	}
	return n
}

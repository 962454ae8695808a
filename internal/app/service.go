// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/marquee-live/marquee/internal/adapters/catalog"
	"github.com/marquee-live/marquee/internal/adapters/locallist"
	"github.com/marquee-live/marquee/internal/domain/model"
	"github.com/marquee-live/marquee/internal/domain/pricing"
	"github.com/marquee-live/marquee/internal/domain/recs"
	"github.com/marquee-live/marquee/internal/domain/types"
	"github.com/marquee-live/marquee/pkg/logger"
	"github.com/marquee-live/marquee/pkg/metrics"
)

// Paging defaults; queries may override within [1, maxLimit].
const (
	defaultPageLimit = 5
	defaultMaxLimit  = 100
)

// Crowdfund demo constants for the detail view. The original demo derives
// these client-side from a fixed cost breakdown.
const (
	demoVenueCost      = 9400.0
	demoProductionCost = 11600.0
	demoArtistMinCost  = 6500.0
	demoPlatformCost   = 1500.0
	demoCapacity       = 1200
	demoFDI            = 0.62
	demoPledgeValue    = 4000.0
	demoProjectedSales = 12000.0
	fairPriceFloorPct  = 0.90
	fairPriceCapPct    = 1.15
)

// Query mirrors the read shape accepted by recommendation queries.
type Query = types.Query

// Service wires the catalog, the local lists and the scorer into the
// read-only recommendation surface the HTTP API exposes.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog catalog.Source
	lists   locallist.Store
	scorer  *recs.Scorer

	// Configuration
	catalogPath  string
	defaultLimit int
	maxLimit     int
	maxPerList   int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog injects a candidate source. Mostly used by tests; Start
// builds one from configuration otherwise.
func WithCatalog(src catalog.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.catalog = src
		}
	}
}

// WithCatalogPath points Start at a YAML catalog file.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithLists injects a local-list store.
func WithLists(store locallist.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.lists = store
		}
	}
}

// WithScorer injects a configured scorer.
func WithScorer(sc *recs.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithDefaultLimit sets the page size used when a query omits limit.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps the requested page size.
func WithMaxLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// WithMaxPerList bounds each local list.
func WithMaxPerList(n int) Option {
	return func(s *Service) {
		s.maxPerList = n
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLimit: defaultPageLimit,
		maxLimit:     defaultMaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components that were not injected.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting recommendation service...")

	if s.catalog == nil {
		if s.catalogPath != "" {
			src, err := catalog.FromFile(s.catalogPath)
			if err != nil {
				// A broken catalog file must not take the read path down;
				// fall back to the built-in demo catalog.
				s.logger.Warn(ctx, "catalog file unusable; falling back to demo catalog",
					logger.String("path", s.catalogPath),
					logger.Error(err),
				)
				src = catalog.NewMemorySource()
			}
			s.catalog = src
		} else {
			s.catalog = catalog.NewMemorySource()
		}
	}
	if s.lists == nil {
		s.lists = locallist.NewInMemoryStore(locallist.WithMaxPerList(s.maxPerList))
	}
	if s.scorer == nil {
		s.scorer = recs.New()
	}

	metrics.UpdateCatalogSize(s.catalog.Count(ctx))

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.Int("catalogSize", s.catalog.Count(ctx)),
		logger.Int("defaultLimit", s.defaultLimit),
		logger.Int("maxLimit", s.maxLimit),
	)
	return nil
}

// Stop shuts the service down. Nothing holds external resources today;
// kept for lifecycle symmetry with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped")
}

// clampLimit normalizes a requested page size into [1, maxLimit]. Zero
// means "not specified" and takes the default.
func (s *Service) clampLimit(n int) int {
	if n == 0 {
		n = s.defaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > s.maxLimit {
		return s.maxLimit
	}
	return n
}

// finitePtr passes p through only when it holds a finite number.
// Non-finite distances must surface as JSON null, same as absent ones.
func finitePtr(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	return p
}

// Recommend scores every catalog event against the query and returns the
// top page. An unavailable catalog degrades to an empty page; only faults
// in the scoring pipeline itself propagate.
func (s *Service) Recommend(ctx context.Context, q Query) ([]types.Recommendation, error) {
	limit := s.clampLimit(q.Limit)
	prefs := recs.NewPrefs(q.LikedGenres, q.BandCenter, q.BandWidth)

	events, err := s.catalog.Events(ctx)
	if err != nil {
		s.logger.Warn(ctx, "catalog unavailable; serving empty page", logger.Error(err))
		events = nil
	}

	start := time.Now()
	rows := make([]types.Recommendation, 0, len(events))
	for _, e := range events {
		res := s.scorer.ScoreEvent(s.candidate(ctx, e), prefs)
		rows = append(rows, types.Recommendation{
			ID:       e.ID,
			Name:     e.Name,
			Genre:    e.Genre,
			Distance: finitePtr(e.Distance),
			Likes:    e.Likes,
			Score:    res.Score,
			Reasons:  res.Reasons,
		})
	}
	metrics.RecordCandidatesScored(len(rows))
	metrics.RecordScoringDuration(float64(time.Since(start).Microseconds()) / 1000.0)

	sortRecommendations(rows)

	if len(rows) > limit {
		rows = rows[:limit]
	}
	metrics.RecordRecommendationPage(len(rows))

	s.logger.Debug(ctx, "served recommendation page",
		logger.Int("candidates", len(events)),
		logger.Int("rows", len(rows)),
		logger.Int("limit", limit),
	)
	return rows, nil
}

// candidate builds the scoring input for one event, joining the purchase
// signal from the tickets list. The scorer itself never sees the lists.
func (s *Service) candidate(ctx context.Context, e model.Event) recs.Candidate {
	return recs.Candidate{
		ID:        e.ID,
		Genre:     e.Genre,
		Distance:  e.Distance,
		Price:     e.Price,
		Purchased: s.lists.Has(ctx, locallist.Tickets, e.ID),
	}
}

// sortRecommendations orders rows by score desc, then distance asc with
// unknown distance last, then likes desc. The comparator is total: any two
// rows compare consistently, so repeated queries over the same catalog
// produce the same page.
func sortRecommendations(rows []types.Recommendation) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		da, db := math.Inf(1), math.Inf(1)
		if a.Distance != nil {
			da = *a.Distance
		}
		if b.Distance != nil {
			db = *b.Distance
		}
		if da != db {
			return da < db
		}
		return a.Likes > b.Likes
	})
}

// round2 keeps the demo money math at cent precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EventDetail returns the expanded view of one event, deriving the
// crowdfund demo numbers the detail page renders. Returns
// catalog.ErrNotFound for an unknown id.
func (s *Service) EventDetail(ctx context.Context, id string) (types.EventDetail, error) {
	e, err := s.catalog.Event(ctx, id)
	if err != nil {
		return types.EventDetail{}, err
	}

	breakEven := demoVenueCost + demoProductionCost + demoArtistMinCost + demoPlatformCost
	perTicket := round2(breakEven / demoCapacity)

	var fair types.FairPrice
	if price, ok := priceOf(e); ok {
		fair.Min = round2(math.Max(perTicket, round2(price*fairPriceFloorPct)))
		fair.Cap = round2(price * fairPriceCapPct)
		fair.Current = round2(price)
	} else {
		fair.Min = perTicket
		fair.Cap = round2(perTicket * fairPriceCapPct)
		fair.Current = round2(pricing.FairPriceFromFDI(fair.Min, fair.Cap, demoFDI))
	}

	detail := types.EventDetail{
		ID:             e.ID,
		Name:           e.Name,
		Genre:          e.Genre,
		Distance:       finitePtr(e.Distance),
		Likes:          e.Likes,
		HostID:         e.HostID,
		ArtistIDs:      e.ArtistIDs,
		Capacity:       demoCapacity,
		BreakEvenCost:  breakEven,
		FDI:            demoFDI,
		PledgeValue:    demoPledgeValue,
		ProjectedSales: demoProjectedSales,
		DemandPct:      pricing.ToPct(demoFDI),
		RiskPct:        pricing.RiskPct(demoPledgeValue, demoProjectedSales, breakEven),
		FairPrice:      fair,
		Purchased:      s.lists.Has(ctx, locallist.Tickets, e.ID),
	}
	if host, err := s.catalog.Host(ctx, e.HostID); err == nil {
		detail.HostName = host.Name
	}
	return detail, nil
}

// priceOf extracts a finite listed price.
func priceOf(e model.Event) (float64, bool) {
	if p := finitePtr(e.Price); p != nil {
		return *p, true
	}
	return 0, false
}

// AddToList records id under list. Returns false for a duplicate.
func (s *Service) AddToList(ctx context.Context, list, id string) bool {
	added := s.lists.Add(ctx, list, id)
	if added {
		metrics.RecordListMutation(list, "add")
		metrics.UpdateListSize(list, len(s.lists.Members(ctx, list)))
	}
	return added
}

// RemoveFromList drops id from list.
func (s *Service) RemoveFromList(ctx context.Context, list, id string) {
	s.lists.Remove(ctx, list, id)
	metrics.RecordListMutation(list, "remove")
	metrics.UpdateListSize(list, len(s.lists.Members(ctx, list)))
}

// ListMembers returns the ids in list in insertion order.
func (s *Service) ListMembers(ctx context.Context, list string) []string {
	return s.lists.Members(ctx, list)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"defaultLimit": s.defaultLimit,
		"maxLimit":     s.maxLimit,
	}
	if s.started {
		stats["catalogSize"] = s.catalog.Count(ctx)
		stats["listEntries"] = s.lists.Size()
		metrics.UpdateCatalogSize(s.catalog.Count(ctx))
	}
	return stats
}

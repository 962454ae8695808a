// Package recs computes recommendation scores for catalog events.
//
// Scoring is a pure mapping (Candidate, Prefs) -> Result: no I/O, no clock,
// no shared state. Malformed numeric input never errors; every guard falls
// back to the conservative default so a read-heavy recommendation surface
// cannot crash on bad data.
package recs

import (
	"math"
	"sort"
)

// Scoring constants. The distance horizon is where distance credit reaches
// zero; a missing distance is treated as effectively unreachable.
const (
	missingDistanceMiles = 999.0
	distanceHorizonMiles = 20.0

	// baselineTasteFit keeps unknown-taste items mildly attractive instead
	// of zeroing them out entirely.
	baselineTasteFit = 0.4

	defaultPurchaseWeight = 0.5
	defaultDistanceWeight = 0.25
	defaultPriceWeight    = 0.15
	defaultTasteWeight    = 0.10
)

// reasonCount is the fixed length of Result.Reasons.
const reasonCount = 2

// Prefs captures the scoring context for one user. It is an immutable value
// type: the liked-genre set is copied on construction and never exposed.
type Prefs struct {
	liked      map[string]struct{}
	bandCenter float64
	bandWidth  float64
}

// NewPrefs builds Prefs from a list of liked genres and a price band.
// Empty genre strings are dropped; duplicates collapse.
func NewPrefs(likedGenres []string, bandCenter, bandWidth float64) Prefs {
	liked := make(map[string]struct{}, len(likedGenres))
	for _, g := range likedGenres {
		if g != "" {
			liked[g] = struct{}{}
		}
	}
	return Prefs{liked: liked, bandCenter: bandCenter, bandWidth: bandWidth}
}

// Likes reports whether genre is in the liked set.
func (p Prefs) Likes(genre string) bool {
	_, ok := p.liked[genre]
	return ok
}

// LikedCount returns the number of liked genres.
func (p Prefs) LikedCount() int { return len(p.liked) }

// BandCenter returns the price-band center.
func (p Prefs) BandCenter() float64 { return p.bandCenter }

// BandWidth returns the price-band width.
func (p Prefs) BandWidth() float64 { return p.bandWidth }

// Candidate is one event being scored. Distance and Price use nil for
// "unknown"; an empty Genre means the genre is unknown.
type Candidate struct {
	ID        string
	Genre     string
	Distance  *float64 // miles
	Price     *float64 // currency units
	Purchased bool
}

// Result is the scorer output: a score in [0,1] and exactly two
// human-readable reasons ranked by contribution.
type Result struct {
	Score   float64
	Reasons []string
}

// clamp bounds n to [lo, hi].
func clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// finite extracts a usable value from an optional float. Non-finite values
// (NaN, +/-Inf) count as absent.
func finite(f *float64) (float64, bool) {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return 0, false
	}
	return *f, true
}

// DistanceFit maps distance in miles to [0,1]: 1 at zero distance, linear
// decay to 0 at the horizon. Missing distance is treated as 999 miles.
func DistanceFit(mi *float64) float64 {
	m := missingDistanceMiles
	if v, ok := finite(mi); ok {
		m = v
	}
	return clamp(1-m/distanceHorizonMiles, 0, 1)
}

// PriceFit maps price to [0,1] relative to a (center, width) band: 1 at the
// center, linear decay to 0 at distance width from it. A missing price earns
// no credit. A non-positive width degenerates to exact match: 1 iff
// price == center. That edge policy is pinned by existing behavior; do not
// "fix" it to always-0.
func PriceFit(price *float64, center, width float64) float64 {
	p, ok := finite(price)
	if !ok {
		return 0
	}
	if width <= 0 {
		if p == center {
			return 1
		}
		return 0
	}
	return clamp(1-math.Abs(p-center)/width, 0, 1)
}

// TasteFit returns 1 for a liked genre and the mild baseline otherwise,
// including when the genre is unknown.
func TasteFit(p Prefs, genre string) float64 {
	if genre != "" && p.Likes(genre) {
		return 1
	}
	return baselineTasteFit
}

// Option applies a configuration option to a Scorer.
type Option func(*Scorer)

// WithWeights overrides the criterion weights. Negative weights are ignored
// wholesale to keep the score bounded.
func WithWeights(purchase, distance, price, taste float64) Option {
	return func(s *Scorer) {
		if purchase < 0 || distance < 0 || price < 0 || taste < 0 {
			return
		}
		s.purchaseWeight = purchase
		s.distanceWeight = distance
		s.priceWeight = price
		s.tasteWeight = taste
	}
}

// Scorer combines the per-criterion fits into a weighted aggregate. The
// zero-configuration Scorer uses the fixed production weights, which sum
// to 1.0 by construction.
type Scorer struct {
	purchaseWeight float64
	distanceWeight float64
	priceWeight    float64
	tasteWeight    float64
}

// New creates a Scorer with the default weights, then applies options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		purchaseWeight: defaultPurchaseWeight,
		distanceWeight: defaultDistanceWeight,
		priceWeight:    defaultPriceWeight,
		tasteWeight:    defaultTasteWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreEvent scores one candidate against the user prefs.
//
// Reasons are ranked by the raw per-criterion fit values, not the weighted
// contributions; the stable sort preserves declaration order (purchase,
// distance, price, taste) on exact ties. The final clamp is a guard against
// future weight edits; with the default weights the raw sum is already in
// range.
func (s *Scorer) ScoreEvent(c Candidate, p Prefs) Result {
	d := DistanceFit(c.Distance)
	pr := PriceFit(c.Price, p.BandCenter(), p.BandWidth())
	t := TasteFit(p, c.Genre)
	purchased := 0.0
	if c.Purchased {
		purchased = 1
	}

	raw := s.purchaseWeight*purchased + s.distanceWeight*d + s.priceWeight*pr + s.tasteWeight*t
	score := clamp(raw, 0, 1)

	tasteLabel := "Matches your genre"
	if c.Genre != "" {
		tasteLabel = "Matches your " + c.Genre
	}
	pool := []struct {
		val   float64
		label string
	}{
		{purchased, "Purchased"},
		{d, "Near you"},
		{pr, "In your price range"},
		{t, tasteLabel},
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].val > pool[j].val })

	reasons := make([]string, reasonCount)
	for i := range reasons {
		reasons[i] = pool[i].label
	}
	return Result{Score: score, Reasons: reasons}
}

// ScoreEvent scores with the default weights. Most callers want this; the
// Scorer type exists for configuration-driven deployments.
func ScoreEvent(c Candidate, p Prefs) Result {
	return defaultScorer.ScoreEvent(c, p)
}

var defaultScorer = New()

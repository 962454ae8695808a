// Package types contains common types used across the application
package types

// FairPrice is the demo pricing band shown on the detail view.
type FairPrice struct {
	Current float64 `json:"current"`
	Min     float64 `json:"min"`
	Cap     float64 `json:"cap"`
}

// EventDetail is the expanded view of one catalog event, including the
// derived crowdfund demo numbers.
type EventDetail struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Genre     string   `json:"genre"`
	Distance  *float64 `json:"distance"`
	Likes     int      `json:"likes"`
	HostID    string   `json:"hostId"`
	HostName  string   `json:"hostName,omitempty"`
	ArtistIDs []string `json:"artistIds"`

	Capacity       int       `json:"capacity"`
	BreakEvenCost  float64   `json:"breakEvenCost"`
	FDI            float64   `json:"fdi"`
	PledgeValue    float64   `json:"pledgeValue"`
	ProjectedSales float64   `json:"projectedSales"`
	DemandPct      int       `json:"demandPct"`
	RiskPct        int       `json:"riskPct"`
	FairPrice      FairPrice `json:"fairPrice"`

	Purchased bool `json:"purchased"`
}

// Query carries the normalized parameters for one recommendation page.
// Zero Limit means "not specified"; the query service applies its default.
type Query struct {
	LikedGenres []string
	BandCenter  float64
	BandWidth   float64
	Limit       int
}

// Recommendation is one row of a recommendation page. Distance is nil when
// the event has no published distance and must serialize as JSON null, not
// zero. Reasons always carries exactly two labels.
type Recommendation struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Genre    string   `json:"genre"`
	Distance *float64 `json:"distance"`
	Likes    int      `json:"likes"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

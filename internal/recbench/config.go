package recbench

import "time"

// Config holds configuration for the recommendation benchmark.
type Config struct {
	BaseURL  string        // Base URL of the service
	Queries  int           // Number of queries to generate
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	MaxLimit int           // Highest page size to request
	LogFile  string        // Log file for benchmark output
	Verbose  bool          // Enable verbose logging
}

// Query is one randomized recommendation request.
type Query struct {
	ID          string
	LikedGenres []string
	BandCenter  float64
	BandWidth   float64
	Limit       int
}

// Row mirrors one recommendation returned by the service.
type Row struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Genre    string   `json:"genre"`
	Distance *float64 `json:"distance"`
	Likes    int      `json:"likes"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

// Stats holds benchmark statistics.
type Stats struct {
	QueriesGenerated int
	QueriesSent      int
	QueriesOK        int
	QueriesFailed    int
	PagesVerified    int
	PagesInvalid     int
	RowsReturned     int
	EmptyPages       int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

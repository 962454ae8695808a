// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath optionally points at a YAML catalog file. Empty means
	// the built-in demo catalog.
	CatalogPath string `koanf:"catalog_path"`

	// DefaultBandCenter and DefaultBandWidth seed the price band when a
	// query does not carry one.
	DefaultBandCenter float64 `koanf:"default_band_center"`
	DefaultBandWidth  float64 `koanf:"default_band_width"`

	// DefaultLimit is the page size when a query omits limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the requested page size.
	MaxLimit int `koanf:"max_limit"`

	// Scorer weights. These default to the production values; changing
	// them changes ranking for every query.
	PurchaseWeight float64 `koanf:"purchase_weight"`
	DistanceWeight float64 `koanf:"distance_weight"`
	PriceWeight    float64 `koanf:"price_weight"`
	TasteWeight    float64 `koanf:"taste_weight"`

	// MaxListEntries bounds each local list. Non-positive means unbounded.
	MaxListEntries int `koanf:"max_list_entries"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9090",
		DefaultBandCenter: 30,
		DefaultBandWidth:  10,
		DefaultLimit:      5,
		MaxLimit:          100,
		PurchaseWeight:    0.5,
		DistanceWeight:    0.25,
		PriceWeight:       0.15,
		TasteWeight:       0.10,
		MaxListEntries:    10_000,
	}
}

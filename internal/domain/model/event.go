// Package model contains domain models passed between layers.
package model

// Event is one catalog entry in the discovery feed. Distance and Price are
// nil when the venue or listing has not published them; consumers must not
// conflate "absent" with zero.
type Event struct {
	ID        string   `koanf:"id" json:"id"`
	Name      string   `koanf:"name" json:"name"`
	Genre     string   `koanf:"genre" json:"genre"`
	Likes     int      `koanf:"likes" json:"likes"`
	HostID    string   `koanf:"host_id" json:"hostId"`
	ArtistIDs []string `koanf:"artist_ids" json:"artistIds"`
	Distance  *float64 `koanf:"distance" json:"distance,omitempty"` // miles
	Price     *float64 `koanf:"price" json:"price,omitempty"`       // currency units
}

// Host organizes events.
type Host struct {
	ID        string `koanf:"id" json:"id"`
	Name      string `koanf:"name" json:"name"`
	Followers int    `koanf:"followers" json:"followers"`
}

// Artist performs at events.
type Artist struct {
	ID        string `koanf:"id" json:"id"`
	Name      string `koanf:"name" json:"name"`
	Genre     string `koanf:"genre" json:"genre"`
	Followers int    `koanf:"followers" json:"followers"`
}

package catalog

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/marquee-live/marquee/internal/domain/model"
)

// Option applies a configuration option to the MemorySource.
type Option func(*MemorySource)

// WithEvents replaces the seeded event list.
func WithEvents(events []model.Event) Option {
	return func(s *MemorySource) {
		if events != nil {
			s.events = events
		}
	}
}

// WithHosts replaces the seeded host list.
func WithHosts(hosts []model.Host) Option {
	return func(s *MemorySource) {
		if hosts != nil {
			s.hosts = hosts
		}
	}
}

// WithArtists replaces the seeded artist list.
func WithArtists(artists []model.Artist) Option {
	return func(s *MemorySource) {
		if artists != nil {
			s.artists = artists
		}
	}
}

// MemorySource serves the catalog from memory. The backing slices are fixed
// after construction, so reads need no locking and are safe from any number
// of goroutines.
type MemorySource struct {
	events  []model.Event
	hosts   []model.Host
	artists []model.Artist

	eventIndex map[string]int
	hostIndex  map[string]int
}

// NewMemorySource creates a source seeded with the demo catalog unless
// options replace it.
func NewMemorySource(opts ...Option) *MemorySource {
	s := &MemorySource{
		events:  demoEvents(),
		hosts:   demoHosts(),
		artists: demoArtists(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.eventIndex = make(map[string]int, len(s.events))
	for i, e := range s.events {
		s.eventIndex[e.ID] = i
	}
	s.hostIndex = make(map[string]int, len(s.hosts))
	for i, h := range s.hosts {
		s.hostIndex[h.ID] = i
	}
	return s
}

// catalogFile mirrors the YAML catalog document shape.
type catalogFile struct {
	Events  []model.Event  `koanf:"events"`
	Hosts   []model.Host   `koanf:"hosts"`
	Artists []model.Artist `koanf:"artists"`
}

// FromFile loads a YAML catalog and returns a MemorySource over it. The
// file layers on top of nothing: a catalog file fully replaces the demo
// seed.
func FromFile(path string) (*MemorySource, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	var doc catalogFile
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	return NewMemorySource(
		WithEvents(doc.Events),
		WithHosts(doc.Hosts),
		WithArtists(doc.Artists),
	), nil
}

// Events returns a copy of the catalog in declaration order.
func (s *MemorySource) Events(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// Event returns a single event by id.
func (s *MemorySource) Event(_ context.Context, id string) (model.Event, error) {
	i, ok := s.eventIndex[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	return s.events[i], nil
}

// Host returns a single host by id.
func (s *MemorySource) Host(_ context.Context, id string) (model.Host, error) {
	i, ok := s.hostIndex[id]
	if !ok {
		return model.Host{}, ErrNotFound
	}
	return s.hosts[i], nil
}

// Count returns the number of events.
func (s *MemorySource) Count(_ context.Context) int {
	return len(s.events)
}

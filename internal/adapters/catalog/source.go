// Package catalog defines the read-only candidate source for the
// recommendation feed.
package catalog

import (
	"context"

	"github.com/marquee-live/marquee/internal/domain/model"
)

// Source exposes the event catalog to the application. Implementations are
// read-only from the caller's perspective; returned slices are fresh copies
// that the caller may reorder freely.
type Source interface {
	// Events returns every catalog event in stable declaration order.
	Events(ctx context.Context) ([]model.Event, error)

	// Event returns a single event by id. Returns ErrNotFound when the id
	// is unknown.
	Event(ctx context.Context, id string) (model.Event, error)

	// Host returns a host by id. Returns ErrNotFound when unknown.
	Host(ctx context.Context, id string) (model.Host, error)

	// Count returns the number of events in the catalog.
	Count(ctx context.Context) int
}

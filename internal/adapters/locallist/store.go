// Package locallist keeps the demo's per-user local state: opaque
// string-keyed lists of ids (liked events, followed hosts and artists,
// purchased tickets). The scorer never reads these lists; callers join
// whatever signal they need into the scoring input themselves.
package locallist

import "context"

// Well-known list keys. The store itself treats keys as opaque; these are
// the ones the demo UI writes.
const (
	LikedEvents     = "liked_events"
	FollowedHosts   = "followed_hosts"
	FollowedArtists = "followed_artists"
	Tickets         = "tickets"
)

// Store provides access to named id lists. All methods are safe for
// concurrent use.
type Store interface {
	// Add records id under list. Returns false when id was already present.
	Add(ctx context.Context, list, id string) bool

	// Remove drops id from list. Removing an absent id is a no-op.
	Remove(ctx context.Context, list, id string)

	// Has reports whether id is present in list.
	Has(ctx context.Context, list, id string) bool

	// Members returns the ids in list in insertion order.
	Members(ctx context.Context, list string) []string

	// Size returns the total number of ids across all lists.
	Size() int64
}

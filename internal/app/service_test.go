package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/marquee-live/marquee/internal/adapters/catalog"
	"github.com/marquee-live/marquee/internal/adapters/locallist"
	service "github.com/marquee-live/marquee/internal/app"
	"github.com/marquee-live/marquee/internal/domain/model"
	"github.com/marquee-live/marquee/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }

// failingSource simulates an unavailable upstream catalog.
type failingSource struct{}

func (failingSource) Events(context.Context) ([]model.Event, error) {
	return nil, errors.New("catalog offline")
}

func (failingSource) Event(context.Context, string) (model.Event, error) {
	return model.Event{}, errors.New("catalog offline")
}

func (failingSource) Host(context.Context, string) (model.Host, error) {
	return model.Host{}, errors.New("catalog offline")
}

func (failingSource) Count(context.Context) int { return 0 }

func startService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("service start: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceRecommend(t *testing.T) {
	Convey("Given a service over a small catalog", t, func() {
		ctx := context.Background()
		src := catalog.NewMemorySource(catalog.WithEvents([]model.Event{
			{ID: "e1", Name: "Neon City Fest", Genre: "EDM", Likes: 10, Distance: fp(1)},
			{ID: "e2", Name: "Luna Live", Genre: "Pop", Likes: 5, Distance: fp(4)},
			{ID: "e3", Name: "Crimson Arena", Genre: "Rock", Likes: 20, Distance: fp(3)},
		}))
		svc := startService(t, service.WithCatalog(src))

		Convey("When querying with liked genres", func() {
			rows, err := svc.Recommend(ctx, service.Query{
				LikedGenres: []string{"EDM", "Pop"},
				BandCenter:  30,
				BandWidth:   10,
				Limit:       6,
			})

			Convey("Then the full catalog comes back, at most limit rows", func() {
				So(err, ShouldBeNil)
				So(len(rows), ShouldBeLessThanOrEqualTo, 6)
				So(len(rows), ShouldEqual, 3)
			})

			Convey("And scores are descending with two reasons each", func() {
				for i := 1; i < len(rows); i++ {
					So(rows[i-1].Score, ShouldBeGreaterThanOrEqualTo, rows[i].Score)
				}
				for _, r := range rows {
					So(len(r.Reasons), ShouldEqual, 2)
					So(r.Score, ShouldBeGreaterThanOrEqualTo, 0)
					So(r.Score, ShouldBeLessThanOrEqualTo, 1)
				}
			})

			Convey("And the close liked-genre event ranks first", func() {
				So(rows[0].ID, ShouldEqual, "e1")
			})
		})

		Convey("When an event was purchased", func() {
			before, err := svc.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: 3})
			So(err, ShouldBeNil)

			So(svc.AddToList(ctx, locallist.Tickets, "e2"), ShouldBeTrue)
			after, err := svc.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: 3})
			So(err, ShouldBeNil)

			Convey("Then the purchased event jumps to the top", func() {
				So(after[0].ID, ShouldEqual, "e2")
				So(after[0].Reasons[0], ShouldEqual, "Purchased")
				So(before[0].ID, ShouldNotEqual, "e2")
			})
		})
	})
}

func TestServiceRecommendOrdering(t *testing.T) {
	Convey("Given score ties", t, func() {
		ctx := context.Background()
		// Same genre, no distance/price differences other than the ones
		// under test, so scores tie where intended.
		src := catalog.NewMemorySource(catalog.WithEvents([]model.Event{
			{ID: "far", Genre: "Jazz", Likes: 1, Distance: fp(30)},   // distance fit 0
			{ID: "unknown", Genre: "Jazz", Likes: 9},                 // no distance at all
			{ID: "also-far", Genre: "Jazz", Likes: 7, Distance: fp(25)}, // distance fit 0
		}))
		svc := startService(t, service.WithCatalog(src))

		Convey("When querying", func() {
			rows, err := svc.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: 10})
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 3)

			Convey("Then known distances beat unknown ones on equal scores", func() {
				// All three score identically: distance fit 0, same genre.
				So(rows[0].Score, ShouldEqual, rows[1].Score)
				So(rows[1].Score, ShouldEqual, rows[2].Score)

				So(rows[0].ID, ShouldEqual, "also-far")
				So(rows[1].ID, ShouldEqual, "far")
				So(rows[2].ID, ShouldEqual, "unknown")
			})

			Convey("And the unknown distance surfaces as nil, not zero", func() {
				So(rows[2].Distance, ShouldBeNil)
				So(rows[0].Distance, ShouldNotBeNil)
			})
		})

		Convey("When distances also tie", func() {
			tie := catalog.NewMemorySource(catalog.WithEvents([]model.Event{
				{ID: "quiet", Genre: "Jazz", Likes: 3, Distance: fp(4)},
				{ID: "popular", Genre: "Jazz", Likes: 300, Distance: fp(4)},
			}))
			svc2 := startService(t, service.WithCatalog(tie))

			rows, err := svc2.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: 10})
			So(err, ShouldBeNil)

			Convey("Then likes break the tie, descending", func() {
				So(rows[0].ID, ShouldEqual, "popular")
				So(rows[1].ID, ShouldEqual, "quiet")
			})
		})
	})
}

func TestServiceRecommendLimit(t *testing.T) {
	Convey("Given the demo catalog", t, func() {
		ctx := context.Background()
		svc := startService(t, service.WithCatalog(catalog.NewMemorySource()))

		Convey("When limit is zero (absent)", func() {
			rows, err := svc.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10})
			So(err, ShouldBeNil)

			Convey("Then the default page size of 5 applies", func() {
				So(len(rows), ShouldEqual, 5)
			})
		})

		Convey("When limit is negative", func() {
			rows, err := svc.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: -7})
			So(err, ShouldBeNil)

			Convey("Then it clamps up to 1", func() {
				So(len(rows), ShouldEqual, 1)
			})
		})

		Convey("When limit exceeds the cap", func() {
			svc2 := startService(t, service.WithCatalog(catalog.NewMemorySource()), service.WithMaxLimit(10))
			rows, err := svc2.Recommend(ctx, service.Query{BandCenter: 30, BandWidth: 10, Limit: 5000})
			So(err, ShouldBeNil)

			Convey("Then it clamps down to the cap", func() {
				So(len(rows), ShouldEqual, 10)
			})
		})
	})
}

func TestServiceRecommendDegraded(t *testing.T) {
	Convey("Given an unavailable catalog", t, func() {
		ctx := context.Background()
		svc := startService(t, service.WithCatalog(failingSource{}))

		Convey("When querying", func() {
			rows, err := svc.Recommend(ctx, service.Query{LikedGenres: []string{"EDM"}, BandCenter: 30, BandWidth: 10, Limit: 5})

			Convey("Then the page is empty but not an error", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}

func TestServiceEventDetail(t *testing.T) {
	Convey("Given the demo catalog", t, func() {
		ctx := context.Background()
		svc := startService(t, service.WithCatalog(catalog.NewMemorySource()))

		Convey("When fetching a known event", func() {
			detail, err := svc.EventDetail(ctx, "e1")
			So(err, ShouldBeNil)

			Convey("Then the catalog fields carry through", func() {
				So(detail.Name, ShouldEqual, "Neon City Fest")
				So(detail.Genre, ShouldEqual, "EDM")
				So(detail.HostName, ShouldEqual, "Neon Nights Co.")
				So(detail.Distance, ShouldNotBeNil)
			})

			Convey("And the crowdfund numbers are derived", func() {
				So(detail.BreakEvenCost, ShouldEqual, 29000.0)
				So(detail.Capacity, ShouldEqual, 1200)
				So(detail.DemandPct, ShouldEqual, 62)
				So(detail.RiskPct, ShouldEqual, 45)
			})

			Convey("And the unpriced event gets an FDI-derived fair price", func() {
				So(detail.FairPrice.Min, ShouldEqual, 24.17)
				So(detail.FairPrice.Cap, ShouldEqual, 27.8)
				So(detail.FairPrice.Current, ShouldEqual, 24.89)
			})

			Convey("And it is not purchased yet", func() {
				So(detail.Purchased, ShouldBeFalse)
			})
		})

		Convey("When the event has a listed price", func() {
			src := catalog.NewMemorySource(catalog.WithEvents([]model.Event{
				{ID: "p1", Name: "Priced Show", Genre: "Pop", Price: fp(30)},
			}))
			svc2 := startService(t, service.WithCatalog(src))

			detail, err := svc2.EventDetail(ctx, "p1")
			So(err, ShouldBeNil)

			Convey("Then the fair price anchors on the listed price", func() {
				So(detail.FairPrice.Current, ShouldEqual, 30.0)
				So(detail.FairPrice.Min, ShouldEqual, 27.0)
				So(detail.FairPrice.Cap, ShouldEqual, 34.5)
			})
		})

		Convey("When a ticket was bought", func() {
			svc.AddToList(ctx, locallist.Tickets, "e1")
			detail, err := svc.EventDetail(ctx, "e1")
			So(err, ShouldBeNil)
			So(detail.Purchased, ShouldBeTrue)
		})

		Convey("When the id is unknown", func() {
			_, err := svc.EventDetail(ctx, "nope")
			So(errors.Is(err, catalog.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestServiceLists(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startService(t, service.WithCatalog(catalog.NewMemorySource()))

		Convey("When mutating lists", func() {
			So(svc.AddToList(ctx, locallist.LikedEvents, "e1"), ShouldBeTrue)
			So(svc.AddToList(ctx, locallist.LikedEvents, "e1"), ShouldBeFalse)
			So(svc.AddToList(ctx, locallist.FollowedHosts, "h1"), ShouldBeTrue)
			svc.RemoveFromList(ctx, locallist.FollowedHosts, "h1")

			Convey("Then membership reads back correctly", func() {
				So(svc.ListMembers(ctx, locallist.LikedEvents), ShouldResemble, []string{"e1"})
				So(svc.ListMembers(ctx, locallist.FollowedHosts), ShouldBeEmpty)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService(t, service.WithCatalog(catalog.NewMemorySource()))

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			Convey("Then the shape is as monitoring expects", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["catalogSize"], ShouldEqual, 20)
				So(stats["defaultLimit"], ShouldEqual, 5)
				So(stats["maxLimit"], ShouldEqual, 100)
			})
		})
	})
}

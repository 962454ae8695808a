package types_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/marquee-live/marquee/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestRecommendationJSON(t *testing.T) {
	convey.Convey("Given a recommendation row", t, func() {
		convey.Convey("When distance is unknown", func() {
			row := types.Recommendation{ID: "e1", Name: "Neon City Fest", Genre: "EDM", Likes: 2100, Score: 0.6, Reasons: []string{"Near you", "Matches your EDM"}}
			b, err := json.Marshal(row)

			convey.Convey("Then it serializes as an explicit null", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"distance":null`)
			})
		})

		convey.Convey("When distance is zero miles", func() {
			d := 0.0
			row := types.Recommendation{ID: "e1", Distance: &d, Reasons: []string{"Near you", "Matches your genre"}}
			b, err := json.Marshal(row)

			convey.Convey("Then zero survives the round trip", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"distance":0`)
			})
		})
	})
}

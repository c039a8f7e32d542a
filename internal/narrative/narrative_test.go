package narrative_test

import (
	"testing"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/narrative"
	. "github.com/smartystreets/goconvey/convey"
)

func depthChart() *model.TeamProfile {
	return &model.TeamProfile{
		Team: "Alpha",
		PositionCount: map[model.Position]float64{
			model.Center:    2.5,
			model.LeftWing:  2.5,
			model.RightWing: 3,
			model.Defense:   4,
			model.Goalie:    2,
		},
	}
}

func TestCheck(t *testing.T) {
	Convey("Given a team depth chart", t, func() {
		profile := depthChart()

		Convey("An inflated count is flagged", func() {
			claims := narrative.Check("We roster five centers this year.", profile)
			So(len(claims), ShouldEqual, 1)
			So(claims[0].Position, ShouldEqual, model.Center)
			So(claims[0].Claimed, ShouldEqual, 5)
			So(claims[0].Actual, ShouldEqual, 2.5)
			So(claims[0].Supported, ShouldBeFalse)
		})

		Convey("An exact count is supported", func() {
			claims := narrative.Check("Both of our two goalies are healthy.", profile)
			So(len(claims), ShouldEqual, 1)
			So(claims[0].Position, ShouldEqual, model.Goalie)
			So(claims[0].Supported, ShouldBeTrue)
		})

		Convey("A fractional count may round up within tolerance", func() {
			// 2.5 centers supports "three centers" but not "four".
			claims := narrative.Check("Three centers and four centers.", profile)
			So(len(claims), ShouldEqual, 2)
			So(claims[0].Supported, ShouldBeTrue)
			So(claims[1].Supported, ShouldBeFalse)
		})

		Convey("Digits and spelled-out numbers both parse", func() {
			claims := narrative.Check("4 defensemen and four defenders.", profile)
			So(len(claims), ShouldEqual, 2)
			So(claims[0].Claimed, ShouldEqual, 4)
			So(claims[1].Claimed, ShouldEqual, 4)
			So(claims[0].Supported, ShouldBeTrue)
			So(claims[1].Supported, ShouldBeTrue)
		})

		Convey("Wing phrases resolve to their side", func() {
			claims := narrative.Check("Two left wingers and three right wings.", profile)
			So(len(claims), ShouldEqual, 2)
			So(claims[0].Position, ShouldEqual, model.LeftWing)
			So(claims[0].Supported, ShouldBeTrue)
			So(claims[1].Position, ShouldEqual, model.RightWing)
			So(claims[1].Supported, ShouldBeTrue)
		})

		Convey("Goalie synonyms all map to the crease", func() {
			claims := narrative.Check("Two netminders, two goaltenders, two goalies.", profile)
			So(len(claims), ShouldEqual, 3)
			for _, c := range claims {
				So(c.Position, ShouldEqual, model.Goalie)
				So(c.Supported, ShouldBeTrue)
			}
		})

		Convey("Claim matching ignores letter case", func() {
			claims := narrative.Check("FIVE CENTERS!", profile)
			So(len(claims), ShouldEqual, 1)
			So(claims[0].Supported, ShouldBeFalse)
		})

		Convey("Text without numeric claims yields nothing", func() {
			claims := narrative.Check("The power play looked sharp this week.", profile)
			So(claims, ShouldBeEmpty)
		})

		Convey("A nil profile yields nothing", func() {
			claims := narrative.Check("We roster five centers.", nil)
			So(claims, ShouldBeNil)
		})

		Convey("An empty depth chart yields nothing", func() {
			claims := narrative.Check("We roster five centers.", &model.TeamProfile{Team: "Alpha"})
			So(claims, ShouldBeNil)
		})
	})
}

package keeper_test

import (
	"testing"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/keeper"
	. "github.com/smartystreets/goconvey/convey"
)

func rules() *keeper.Rules {
	return keeper.NewRules(config.New().Keeper)
}

func TestTiers(t *testing.T) {
	Convey("Given the default tier layout", t, func() {
		r := rules()

		So(r.Tier(1), ShouldEqual, keeper.TierA)
		So(r.Tier(4), ShouldEqual, keeper.TierA)
		So(r.Tier(5), ShouldEqual, keeper.TierB)
		So(r.Tier(10), ShouldEqual, keeper.TierB)
		So(r.Tier(11), ShouldEqual, keeper.TierC)
		So(r.Tier(16), ShouldEqual, keeper.TierC)
	})
}

func TestResolveRound(t *testing.T) {
	Convey("Given keeper round resolution", t, func() {
		r := rules()

		Convey("An owned original round is used directly", func() {
			round, ok := r.ResolveRound(5, []int{3, 5, 8})
			So(ok, ShouldBeTrue)
			So(round, ShouldEqual, 5)
		})

		Convey("A missing round falls to the nearest later owned round", func() {
			round, ok := r.ResolveRound(3, []int{6, 9})
			So(ok, ShouldBeTrue)
			So(round, ShouldEqual, 6)
		})

		Convey("The nearest earlier owned round wins when available", func() {
			round, ok := r.ResolveRound(8, []int{6, 12})
			So(ok, ShouldBeTrue)
			So(round, ShouldEqual, 6)
		})

		Convey("Round 1 is never occupied by a keeper", func() {
			_, ok := r.ResolveRound(2, []int{1})
			So(ok, ShouldBeFalse)
		})

		Convey("A keeper never climbs into a more favorable tier", func() {
			// Original round 7 is tier B; round 2 (tier A) is skipped.
			round, ok := r.ResolveRound(7, []int{2, 12})
			So(ok, ShouldBeTrue)
			So(round, ShouldEqual, 12)
		})

		Convey("No legal round means unkeepable, not an error", func() {
			_, ok := r.ResolveRound(12, []int{1, 2})
			So(ok, ShouldBeFalse)
		})

		Convey("Out-of-range original rounds are unkeepable", func() {
			_, ok := r.ResolveRound(0, []int{5})
			So(ok, ShouldBeFalse)
			_, ok = r.ResolveRound(17, []int{5})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestYearsRemaining(t *testing.T) {
	Convey("Given a three-year keeper limit", t, func() {
		r := rules()

		So(r.YearsRemaining(0), ShouldEqual, 2)
		So(r.YearsRemaining(1), ShouldEqual, 1)
		So(r.YearsRemaining(2), ShouldEqual, 0)
		So(r.YearsRemaining(5), ShouldEqual, 0)
	})
}

func TestBonus(t *testing.T) {
	Convey("Given keeper bonus computation", t, func() {
		r := rules()

		Convey("Non-keepers earn nothing", func() {
			So(r.Bonus(false, 150, 100, 2), ShouldEqual, 0)
		})

		Convey("Expired contracts earn nothing", func() {
			So(r.Bonus(true, 150, 100, 0), ShouldEqual, 0)
		})

		Convey("A negative surplus earns nothing", func() {
			So(r.Bonus(true, 90, 100, 2), ShouldEqual, 0)
		})

		Convey("Surplus scales with remaining control", func() {
			full := r.Bonus(true, 150, 100, 2)
			half := r.Bonus(true, 150, 100, 1)
			So(full, ShouldBeGreaterThan, 0)
			So(half, ShouldBeGreaterThan, 0)
			So(full, ShouldBeGreaterThan, half)
		})
	})
}

func TestExpirationPenalty(t *testing.T) {
	Convey("Given the expiration penalty", t, func() {
		r := rules()

		Convey("A final-year keeper keeps full value", func() {
			So(r.ApplyExpirationPenalty(160, 1), ShouldEqual, 160)
		})

		Convey("An expired contract is discounted", func() {
			So(r.ApplyExpirationPenalty(160, 0), ShouldBeLessThan, 160)
		})
	})
}

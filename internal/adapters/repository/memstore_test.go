package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benchboss/tradewinds/internal/adapters/repository"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func profileFor(team string) *model.TeamProfile {
	return &model.TeamProfile{
		Team:             team,
		PositionCount:    map[model.Position]float64{model.Center: 3},
		PositionSurplus:  map[model.Position]float64{model.Center: 0},
		CategoryZ:        map[category.ID]float64{category.Goals: 0.5},
		CategoryStrength: map[category.ID]model.Strength{category.Goals: model.StrengthNeutral},
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		Convey("Unknown teams return ErrNotFound", func() {
			_, err := store.Analysis(ctx, "ghost")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)

			_, err = store.Profile(ctx, "ghost")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("Analyses round-trip and overwrite per team", func() {
			first := &model.AnalysisResult{Target: "Alpha", GeneratedAt: time.Now()}
			So(store.PutAnalysis(ctx, first), ShouldBeNil)

			got, err := store.Analysis(ctx, "Alpha")
			So(err, ShouldBeNil)
			So(got.Target, ShouldEqual, "Alpha")

			second := &model.AnalysisResult{Target: "Alpha", Reason: model.ReasonNoFairCandidates}
			So(store.PutAnalysis(ctx, second), ShouldBeNil)

			got, err = store.Analysis(ctx, "Alpha")
			So(err, ShouldBeNil)
			So(got.Reason, ShouldEqual, model.ReasonNoFairCandidates)
		})

		Convey("An analysis without a target is rejected", func() {
			err := store.PutAnalysis(ctx, &model.AnalysisResult{})
			So(errors.Is(err, repository.ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("Profiles round-trip and count distinct teams", func() {
			So(store.PutProfile(ctx, profileFor("Alpha")), ShouldBeNil)
			So(store.PutProfile(ctx, profileFor("Beta")), ShouldBeNil)
			So(store.PutProfile(ctx, profileFor("Alpha")), ShouldBeNil)

			So(store.Count(ctx), ShouldEqual, 2)

			got, err := store.Profile(ctx, "Beta")
			So(err, ShouldBeNil)
			So(got.Team, ShouldEqual, "Beta")
		})

		Convey("Incomplete profiles are rejected", func() {
			err := store.PutProfile(ctx, &model.TeamProfile{Team: "Alpha"})
			So(err, ShouldNotBeNil)
		})
	})
}

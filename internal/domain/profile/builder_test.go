package profile_test

import (
	"fmt"
	"testing"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func player(name string, goals float64, positions ...model.Position) *model.Player {
	return &model.Player{
		ID:        name,
		Name:      name,
		Positions: positions,
		Stats: map[category.ID]float64{
			category.Goals:   goals,
			category.Assists: goals * 1.2,
		},
	}
}

func team(name string, goalsPerPlayer float64) *model.Team {
	return &model.Team{
		Name: name,
		Roster: []*model.Player{
			player(name+"-c1", goalsPerPlayer, model.Center),
			player(name+"-c2", goalsPerPlayer, model.Center),
			player(name+"-w1", goalsPerPlayer, model.LeftWing),
			player(name+"-w2", goalsPerPlayer, model.LeftWing, model.RightWing),
			player(name+"-d1", goalsPerPlayer, model.Defense),
			player(name+"-g1", 0, model.Goalie),
		},
	}
}

func league(teams ...*model.Team) (*model.LeagueSnapshot, category.Distributions) {
	snapshot := &model.LeagueSnapshot{Teams: teams}
	stats := make([][]map[category.ID]float64, 0, len(teams))
	for _, t := range teams {
		roster := make([]map[category.ID]float64, 0, len(t.Roster))
		for _, p := range t.Roster {
			roster = append(roster, p.Stats)
		}
		stats = append(stats, roster)
	}
	return snapshot, category.ComputeTeamDistributions(stats)
}

func TestPositionCounts(t *testing.T) {
	Convey("Given fractional position counting", t, func() {
		Convey("A dual-eligible wing splits across both slots", func() {
			counts := profile.PositionCounts(team("X", 20))
			So(counts[model.Center], ShouldEqual, 2)
			So(counts[model.LeftWing], ShouldAlmostEqual, 1.5, 1e-9)
			So(counts[model.RightWing], ShouldAlmostEqual, 0.5, 1e-9)
			So(counts[model.Defense], ShouldEqual, 1)
			So(counts[model.Goalie], ShouldEqual, 1)
		})

		Convey("Goalies count once toward goal only", func() {
			t := &model.Team{Name: "G", Roster: []*model.Player{
				player("g", 0, model.Goalie, model.Defense),
			}}
			counts := profile.PositionCounts(t)
			So(counts[model.Goalie], ShouldEqual, 1)
			So(counts[model.Defense], ShouldEqual, 0)
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a league of varied rosters", t, func() {
		builder := profile.NewBuilder(config.New().Profile)

		teams := make([]*model.Team, 0, 6)
		for i := 0; i < 6; i++ {
			teams = append(teams, team(fmt.Sprintf("T%d", i), float64(10+i*8)))
		}
		snapshot, dists := league(teams...)

		Convey("The weakest roster is weak or critical in goals", func() {
			p, err := builder.Build(teams[0], snapshot, dists, 160)
			So(err, ShouldBeNil)
			So(p.CategoryZ[category.Goals], ShouldBeLessThan, 0)
			So(p.CategoryStrength[category.Goals], ShouldBeIn, model.StrengthWeak, model.StrengthCritical)
			So(p.WeakCategories(), ShouldContain, category.Goals)
		})

		Convey("The strongest roster is strong or elite in goals", func() {
			p, err := builder.Build(teams[5], snapshot, dists, 160)
			So(err, ShouldBeNil)
			So(p.CategoryStrength[category.Goals], ShouldBeIn, model.StrengthStrong, model.StrengthElite)
			So(p.StrongCategories(), ShouldContain, category.Goals)
		})

		Convey("The profile validates and carries flex depth", func() {
			p, err := builder.Build(teams[2], snapshot, dists, 160)
			So(err, ShouldBeNil)
			So(p.Validate(), ShouldBeNil)
			So(p.FlexSkaters, ShouldEqual, 1)
		})

		Convey("Keeper buckets split by remaining control", func() {
			target := teams[1]
			target.Roster[0].Keeper = &model.KeeperState{IsKeeper: true, YearsRemaining: 1}
			target.Roster[1].Keeper = &model.KeeperState{IsKeeper: true, YearsRemaining: 2, Bonus: 30}
			target.Roster[1].Value = 140

			p, err := builder.Build(target, snapshot, dists, 160)
			So(err, ShouldBeNil)
			So(p.ExpiringKeepers, ShouldContain, target.Roster[0].Name)
			So(p.FreshKeepers, ShouldContain, target.Roster[1].Name)
			// 140 + 30 clears the elite keeper bar.
			So(p.EliteKeepers, ShouldContain, target.Roster[1].Name)
		})

		Convey("Nil inputs are rejected", func() {
			_, err := builder.Build(nil, snapshot, dists, 160)
			So(err, ShouldNotBeNil)
		})
	})
}

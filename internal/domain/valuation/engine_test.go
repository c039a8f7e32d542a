package valuation_test

import (
	"fmt"
	"testing"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/domain/valuation"
	. "github.com/smartystreets/goconvey/convey"
)

func skater(name string, goals, assists float64) *model.Player {
	return &model.Player{
		ID:        name,
		Name:      name,
		Positions: []model.Position{model.Center},
		Stats: map[category.ID]float64{
			category.Goals:   goals,
			category.Assists: assists,
			category.Shots:   goals * 7,
		},
		PriorStats: map[category.ID]float64{
			category.Goals:   goals * 0.9,
			category.Assists: assists * 0.9,
			category.Shots:   goals * 6,
		},
	}
}

func goalie(name string, wins, savePct, gaa float64, starts int) *model.Player {
	return &model.Player{
		ID:        name,
		Name:      name,
		Positions: []model.Position{model.Goalie},
		Stats: map[category.ID]float64{
			category.Wins:        wins,
			category.Saves:       wins * 28,
			category.SavePct:     savePct,
			category.GoalsAgaAvg: gaa,
		},
		PriorStats: map[category.ID]float64{
			category.Wins:        wins * 0.9,
			category.Saves:       wins * 25,
			category.SavePct:     savePct,
			category.GoalsAgaAvg: gaa + 0.1,
		},
		Starts:    starts,
		Decisions: starts,
	}
}

// pool builds a spread of skaters so distributions are non-degenerate.
func pool() []*model.Player {
	players := make([]*model.Player, 0, 24)
	for i := 0; i < 20; i++ {
		players = append(players, skater(fmt.Sprintf("skater-%02d", i), float64(5+i*3), float64(8+i*3)))
	}
	for i := 0; i < 4; i++ {
		players = append(players, goalie(fmt.Sprintf("goalie-%02d", i), float64(12+i*8), 0.900+float64(i)*0.008, 3.2-float64(i)*0.3, 20+i*12))
	}
	return players
}

func TestValueBounds(t *testing.T) {
	Convey("Given a full player pool", t, func() {
		cfg := config.New().Valuation
		players := pool()
		engine := valuation.NewEngine(cfg, players)
		lo, hi := engine.Bounds()

		Convey("Every value lands inside the effective band", func() {
			for _, p := range players {
				v := engine.Value(p)
				So(v, ShouldBeGreaterThanOrEqualTo, lo)
				So(v, ShouldBeLessThanOrEqualTo, hi)
			}
		})

		Convey("A player with no stats floors out instead of exploding", func() {
			empty := &model.Player{ID: "empty", Name: "empty", Positions: []model.Position{model.LeftWing}, Stats: map[category.ID]float64{}}
			v := engine.Value(empty)
			So(v, ShouldBeGreaterThanOrEqualTo, lo)
			So(v, ShouldBeLessThanOrEqualTo, hi)
		})
	})
}

func TestDeterminism(t *testing.T) {
	Convey("Given two engines over identical pools", t, func() {
		cfg := config.New().Valuation
		a := valuation.NewEngine(cfg, pool())
		b := valuation.NewEngine(cfg, pool())

		Convey("Valuations are bit-identical", func() {
			for _, p := range pool() {
				So(a.Value(p), ShouldEqual, b.Value(p))
			}
		})
	})
}

func TestOrderingAndTiers(t *testing.T) {
	Convey("Given the skater pipeline", t, func() {
		cfg := config.New().Valuation
		players := pool()
		engine := valuation.NewEngine(cfg, players)

		Convey("Better production values higher", func() {
			low := engine.Value(skater("low", 8, 11))
			high := engine.Value(skater("high", 50, 55))
			So(high, ShouldBeGreaterThan, low)
		})

		Convey("A franchise scorer clears the franchise floor", func() {
			star := skater("star", 62, 88)
			star.PriorStats = map[category.ID]float64{
				category.Goals:   60,
				category.Assists: 85,
			}
			So(engine.Value(star), ShouldBeGreaterThanOrEqualTo, cfg.FranchiseFloor)
		})

		Convey("A rookie line is discounted against the same veteran line", func() {
			veteran := skater("veteran", 30, 35)
			rookie := skater("rookie", 30, 35)
			rookie.PriorStats = nil
			// Blending also differs, so only the direction is asserted.
			So(engine.Value(rookie), ShouldBeLessThan, engine.Value(veteran))
		})
	})
}

func TestGoaliePipeline(t *testing.T) {
	Convey("Given the goalie pipeline", t, func() {
		cfg := config.New().Valuation
		players := pool()
		engine := valuation.NewEngine(cfg, players)

		Convey("A small sample size shrinks the same stat line", func() {
			workhorse := goalie("workhorse", 35, 0.920, 2.4, 58)
			callup := goalie("callup", 35, 0.920, 2.4, 9)
			callup.Decisions = workhorse.Decisions
			So(engine.Value(callup), ShouldBeLessThan, engine.Value(workhorse))
		})

		Convey("A better goals-against average helps, not hurts", func() {
			stingy := goalie("stingy", 30, 0.915, 2.2, 50)
			leaky := goalie("leaky", 30, 0.915, 3.4, 50)
			So(engine.Value(stingy), ShouldBeGreaterThan, engine.Value(leaky))
		})
	})
}

func TestValueAllAndPickValues(t *testing.T) {
	Convey("Given a league snapshot", t, func() {
		cfg := config.New().Valuation
		players := pool()
		snapshot := &model.LeagueSnapshot{
			Teams: []*model.Team{
				{Name: "A", Roster: players[:12]},
				{Name: "B", Roster: players[12:]},
			},
		}
		engine := valuation.NewEngine(cfg, players)

		Convey("ValueAll values everyone in place", func() {
			n := engine.ValueAll(snapshot)
			So(n, ShouldEqual, len(players))
			for _, p := range players {
				So(p.Value, ShouldBeGreaterThan, 0)
			}
		})

		Convey("Pick values decrease by round and stay in band", func() {
			engine.ValueAll(snapshot)
			picks := engine.PickValues(snapshot, 16)
			So(len(picks), ShouldEqual, 16)
			lo, _ := engine.Bounds()
			for r := 2; r <= 16; r++ {
				So(picks[r], ShouldBeLessThanOrEqualTo, picks[r-1])
				So(picks[r], ShouldBeGreaterThanOrEqualTo, lo)
			}
		})
	})
}

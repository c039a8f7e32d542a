package service_test

import (
	"context"
	"fmt"
	"testing"

	service "github.com/benchboss/tradewinds/internal/app"
	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testConfig() *config.Config {
	cfg := config.New()
	// Compact test rosters; the full minimums are exercised in the trade
	// gate tests.
	cfg.RosterMinimums = map[string]float64{"C": 1, "G": 1}
	cfg.WorkerCount = 2
	cfg.JobQueueSize = 16
	return cfg
}

func rawSkater(team string, n int, pos model.Position, goals, assists float64) *model.Player {
	name := fmt.Sprintf("%s Skater %d", team, n)
	return &model.Player{
		ID:        name,
		Name:      name,
		Positions: []model.Position{pos},
		RawStats: map[string]float64{
			"G":          goals,
			"A":          assists,
			"SOG":        goals * 7,
			"Hits":       60,
			"zone exits": 99, // unknown label, dropped by the normalizer
		},
		RawPriorStats: map[string]float64{
			"Goals":   goals * 0.9,
			"Assists": assists * 0.9,
		},
	}
}

func rawGoalie(team string, n int, wins float64, starts int) *model.Player {
	name := fmt.Sprintf("%s Goalie %d", team, n)
	return &model.Player{
		ID:        name,
		Name:      name,
		Positions: []model.Position{model.Goalie},
		RawStats: map[string]float64{
			"W":   wins,
			"SV%": 0.912,
			"GAA": 2.7,
		},
		Starts:    starts,
		Decisions: starts,
	}
}

func buildTeam(name string, scale float64) *model.Team {
	rounds := make([]int, 0, 15)
	for r := 2; r <= 16; r++ {
		rounds = append(rounds, r)
	}
	return &model.Team{
		Name:        name,
		OwnedRounds: rounds,
		Roster: []*model.Player{
			rawSkater(name, 1, model.Center, 35*scale, 45*scale),
			rawSkater(name, 2, model.Center, 22*scale, 28*scale),
			rawSkater(name, 3, model.LeftWing, 28*scale, 20*scale),
			rawSkater(name, 4, model.RightWing, 18*scale, 24*scale),
			rawSkater(name, 5, model.Defense, 8*scale, 30*scale),
			rawSkater(name, 6, model.Defense, 5*scale, 14*scale),
			rawGoalie(name, 7, 28, 50),
			rawGoalie(name, 8, 12, 24),
		},
	}
}

func buildSnapshot() *model.LeagueSnapshot {
	alpha := buildTeam("Alpha", 0.8)
	beta := buildTeam("Beta", 1.2)
	gamma := buildTeam("Gamma", 1.0)

	// One keeper contract per flavor on the target roster.
	alpha.Roster[0].Keeper = &model.KeeperState{IsKeeper: true, OriginalRound: 3, YearIndex: 0}
	alpha.Roster[2].Keeper = &model.KeeperState{IsKeeper: true, OriginalRound: 8, YearIndex: 1}

	return &model.LeagueSnapshot{Teams: []*model.Team{alpha, beta, gamma}}
}

func startedService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(testConfig())
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestAnalyze(t *testing.T) {
	Convey("Given a started service and a three-team league", t, func() {
		svc := startedService(t)
		ctx := context.Background()

		Convey("Analysis produces a bounded, stored result", func() {
			result, err := svc.Analyze(ctx, buildSnapshot(), "Alpha")
			So(err, ShouldBeNil)
			So(result.Target, ShouldEqual, "Alpha")
			So(len(result.Suggestions), ShouldBeLessThanOrEqualTo, 5)
			if len(result.Suggestions) == 0 {
				So(result.Reason, ShouldNotBeEmpty)
			}

			for i := range result.Suggestions {
				s := &result.Suggestions[i]
				So(s.Partner, ShouldBeIn, "Beta", "Gamma")
				So(s.NetValue, ShouldBeGreaterThanOrEqualTo, -30)
				So(s.Confidence, ShouldBeIn,
					model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceSpeculative)
			}

			stored, err := svc.Suggestions(ctx, "Alpha")
			So(err, ShouldBeNil)
			So(len(stored.Suggestions), ShouldEqual, len(result.Suggestions))
		})

		Convey("Repeated runs over the same snapshot are identical", func() {
			snapshot := buildSnapshot()
			first, err := svc.Analyze(ctx, snapshot, "Alpha")
			So(err, ShouldBeNil)
			second, err := svc.Analyze(ctx, snapshot, "Alpha")
			So(err, ShouldBeNil)

			So(len(first.Suggestions), ShouldEqual, len(second.Suggestions))
			for i := range first.Suggestions {
				So(first.Suggestions[i].Signature(), ShouldEqual, second.Suggestions[i].Signature())
				So(first.Suggestions[i].Score, ShouldEqual, second.Suggestions[i].Score)
				So(first.Suggestions[i].Confidence, ShouldEqual, second.Suggestions[i].Confidence)
			}
		})

		Convey("Normalization fills catalog stats and drops unknown labels", func() {
			snapshot := buildSnapshot()
			_, err := svc.Analyze(ctx, snapshot, "Alpha")
			So(err, ShouldBeNil)

			p := snapshot.Teams[0].Roster[0]
			So(p.Stats, ShouldNotBeEmpty)
			So(p.Value, ShouldBeGreaterThan, 0)
			for id := range p.Stats {
				So(id.Valid(), ShouldBeTrue)
			}
		})

		Convey("Aliased labels accumulate in a fixed order", func() {
			build := func() *model.LeagueSnapshot {
				snapshot := buildSnapshot()
				p := snapshot.Teams[0].Roster[0]
				// Three spellings of the same category, with addends whose
				// floating-point sum depends on evaluation order.
				delete(p.RawStats, "SOG")
				p.RawStats["SOG"] = 0.1
				p.RawStats["Shots"] = 0.2
				p.RawStats["shots on goal"] = 0.3
				return snapshot
			}

			first := build()
			_, err := svc.Analyze(ctx, first, "Alpha")
			So(err, ShouldBeNil)
			second := build()
			_, err = svc.Analyze(ctx, second, "Alpha")
			So(err, ShouldBeNil)

			a := first.Teams[0].Roster[0].Stats
			b := second.Teams[0].Roster[0].Stats
			So(len(a), ShouldEqual, len(b))
			for id, v := range a {
				So(b[id], ShouldEqual, v)
			}
			// Sorted label order: "SOG", "Shots", "shots on goal".
			want := 0.0
			for _, v := range []float64{0.1, 0.2, 0.3} {
				want += v
			}
			So(a[category.Shots], ShouldEqual, want)
		})

		Convey("Keeper contracts resolve against owned rounds", func() {
			snapshot := buildSnapshot()
			_, err := svc.Analyze(ctx, snapshot, "Alpha")
			So(err, ShouldBeNil)

			k := snapshot.Teams[0].Roster[0].Keeper
			So(k.RoundCost, ShouldEqual, 3)
			So(k.YearsRemaining, ShouldEqual, 2)
		})

		Convey("An unknown target reports a reason, not an error", func() {
			result, err := svc.Analyze(ctx, buildSnapshot(), "Delta")
			So(err, ShouldBeNil)
			So(result.Suggestions, ShouldBeEmpty)
			So(result.Reason, ShouldEqual, model.ReasonUnknownTeam)
		})

		Convey("A league of one has no partners", func() {
			snapshot := &model.LeagueSnapshot{Teams: []*model.Team{buildTeam("Alpha", 1.0)}}
			result, err := svc.Analyze(ctx, snapshot, "Alpha")
			So(err, ShouldBeNil)
			So(result.Reason, ShouldEqual, model.ReasonNoPartners)
		})

		Convey("Profiles become readable after analysis", func() {
			_, err := svc.Analyze(ctx, buildSnapshot(), "Alpha")
			So(err, ShouldBeNil)

			profile, err := svc.Profile(ctx, "Beta")
			So(err, ShouldBeNil)
			So(profile.Team, ShouldEqual, "Beta")
			So(profile.PositionCount[model.Goalie], ShouldEqual, 2)
		})

		Convey("Narrative claims check against the computed depth chart", func() {
			_, err := svc.Analyze(ctx, buildSnapshot(), "Alpha")
			So(err, ShouldBeNil)

			claims, err := svc.CheckNarrative(ctx, "Alpha", "We roster five centers and two goalies.")
			So(err, ShouldBeNil)
			So(len(claims), ShouldEqual, 2)
			So(claims[0].Supported, ShouldBeFalse) // two centers, not five
			So(claims[1].Supported, ShouldBeTrue)
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a fresh service", t, func() {
		svc := service.New(testConfig())

		Convey("Analyze before Start fails fast", func() {
			_, err := svc.Analyze(context.Background(), buildSnapshot(), "Alpha")
			So(err, ShouldNotBeNil)
		})

		Convey("Start is idempotent and Stop is safe", func() {
			ctx := context.Background()
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)

			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["workerCount"], ShouldEqual, 2)

			svc.Stop()
			svc.Stop()
		})
	})
}

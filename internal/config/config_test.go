package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benchboss/tradewinds/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given a default configuration", t, func() {
		cfg := config.New()

		Convey("Then the engine tunables carry sane defaults", func() {
			So(cfg.Addr, ShouldNotBeEmpty)
			So(cfg.Valuation.MinValue, ShouldBeLessThan, cfg.Valuation.MaxValue)
			So(cfg.Valuation.RecentWeight+cfg.Valuation.PriorWeight, ShouldAlmostEqual, 1.0, 1e-9)
			So(cfg.Keeper.MaxYears, ShouldEqual, 3)
			So(cfg.Keeper.TierAMax, ShouldEqual, 4)
			So(cfg.Keeper.TierBMax, ShouldEqual, 10)
			So(cfg.Keeper.MaxRound, ShouldEqual, 16)
			So(cfg.Trade.TopN, ShouldEqual, 5)
			So(cfg.Trade.CategoryWeight, ShouldBeGreaterThanOrEqualTo, cfg.Trade.ValueWeight)
			So(cfg.RosterMinimums["D"], ShouldEqual, 4.0)
		})

		Convey("And the category weight table covers both player kinds", func() {
			So(cfg.Valuation.CategoryWeights["goals"], ShouldBeGreaterThan, cfg.Valuation.CategoryWeights["hits"])
			So(cfg.Valuation.CategoryWeights, ShouldContainKey, "save_pct")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()
		os.Unsetenv("TRADEWINDS_CONFIG")

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Trade.FairnessCeiling, ShouldEqual, 25)
		})

		Convey("When an env override is present", func() {
			os.Setenv("TRADEWINDS_ADDR", ":7171")
			defer os.Unsetenv("TRADEWINDS_ADDR")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7171")
		})

		Convey("When a YAML file overrides a nested tunable", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			body := []byte("trade:\n  top_n: 3\n  fairness_ceiling: 20\n")
			So(os.WriteFile(path, body, 0o600), ShouldBeNil)
			os.Setenv("TRADEWINDS_CONFIG", path)
			defer os.Unsetenv("TRADEWINDS_CONFIG")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Trade.TopN, ShouldEqual, 3)
			So(cfg.Trade.FairnessCeiling, ShouldEqual, 20)
			// Untouched keys keep defaults.
			So(cfg.Trade.HardLossFloor, ShouldEqual, 30)
		})

		Convey("When the file path is bogus", func() {
			os.Setenv("TRADEWINDS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
			defer os.Unsetenv("TRADEWINDS_CONFIG")

			_, err := config.Load(ctx)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}

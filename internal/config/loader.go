package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TRADEWINDS_CONFIG is set
//  3. env (prefix TRADEWINDS_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TRADEWINDS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TRADEWINDS_ADDR, TRADEWINDS_WORKER_COUNT, ...
	// Nested keys use double underscores: TRADEWINDS_TRADE__TOP_N.
	envProvider := env.Provider("TRADEWINDS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tradewinds_")
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.WorkerCount < 1:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case c.Valuation.MinValue >= c.Valuation.MaxValue:
		return fmt.Errorf("%w: valuation min_value must be below max_value", ErrInvalidConfig)
	case c.Valuation.RecentWeight+c.Valuation.PriorWeight <= 0:
		return fmt.Errorf("%w: valuation blend weights must sum above zero", ErrInvalidConfig)
	case c.Keeper.MaxYears < 1:
		return fmt.Errorf("%w: keeper max_years must be positive", ErrInvalidConfig)
	case c.Keeper.TierAMax < 2 || c.Keeper.TierBMax <= c.Keeper.TierAMax || c.Keeper.MaxRound <= c.Keeper.TierBMax:
		return fmt.Errorf("%w: keeper tier bounds must be ordered", ErrInvalidConfig)
	case c.Trade.TopN < 1:
		return fmt.Errorf("%w: trade top_n must be positive", ErrInvalidConfig)
	case c.Trade.CategoryGainClamp <= 0:
		return fmt.Errorf("%w: trade category_gain_clamp must be positive", ErrInvalidConfig)
	case c.Confidence.HighCutoff <= c.Confidence.MediumCutoff:
		return fmt.Errorf("%w: confidence cutoffs must be ordered", ErrInvalidConfig)
	}
	if len(c.Valuation.CategoryWeights) == 0 {
		return fmt.Errorf("%w: valuation category_weights must not be empty", ErrInvalidConfig)
	}
	if len(c.RosterMinimums) == 0 {
		return fmt.Errorf("%w: roster_minimums must not be empty", ErrInvalidConfig)
	}
	return nil
}

// IsInvalid reports whether err is a config validation failure.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

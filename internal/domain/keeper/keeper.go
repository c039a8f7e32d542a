// Package keeper implements keeper-contract rules: which round a kept
// player may occupy, how long the contract runs, and what the surplus over
// draft cost is worth.
package keeper

import (
	"sort"

	"github.com/benchboss/tradewinds/internal/config"
)

// Tier indexes the draft-round tiers, most favorable first.
type Tier int

// Draft round tiers.
const (
	TierA Tier = iota // early rounds
	TierB             // middle rounds
	TierC             // late rounds
)

// Rules evaluates keeper contracts against the configured tier layout.
type Rules struct {
	cfg config.Keeper
}

// NewRules creates keeper rules from configuration.
func NewRules(cfg config.Keeper) *Rules {
	return &Rules{cfg: cfg}
}

// MaxYears returns the configured maximum keeper seasons.
func (r *Rules) MaxYears() int { return r.cfg.MaxYears }

// Tier returns the tier a draft round belongs to.
func (r *Rules) Tier(round int) Tier {
	switch {
	case round <= r.cfg.TierAMax:
		return TierA
	case round <= r.cfg.TierBMax:
		return TierB
	default:
		return TierC
	}
}

// ResolveRound determines the round a keeper occupies given the rounds the
// team still owns. The keeper takes its original round when owned.
// Otherwise it takes the nearest owned earlier round, then the nearest
// owned later round, skipping round 1 and any round in a tier more
// favorable than the original round's tier. Returns ok=false when no legal
// round exists (the player is unkeepable); this is never an error.
func (r *Rules) ResolveRound(originalRound int, ownedRounds []int) (int, bool) {
	if originalRound < 1 || originalRound > r.cfg.MaxRound {
		return 0, false
	}

	legal := make([]int, 0, len(ownedRounds))
	for _, round := range ownedRounds {
		if round == 1 || round < 1 || round > r.cfg.MaxRound {
			continue
		}
		if r.Tier(round) < r.Tier(originalRound) {
			continue
		}
		legal = append(legal, round)
	}
	sort.Ints(legal)

	earlier, later := 0, 0
	for _, round := range legal {
		switch {
		case round == originalRound:
			return round, true
		case round < originalRound:
			earlier = round // sorted ascending, ends at the nearest earlier
		case later == 0:
			later = round
		}
	}
	if earlier != 0 {
		return earlier, true
	}
	if later != 0 {
		return later, true
	}
	return 0, false
}

// YearsRemaining derives seasons of control left from the 0-based contract
// year index.
func (r *Rules) YearsRemaining(yearIndex int) int {
	remaining := r.cfg.MaxYears - (yearIndex + 1)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Bonus computes the keeper contract bonus: draft-cost surplus scaled by
// remaining control. Never negative; zero for non-keepers and for expired
// contracts.
func (r *Rules) Bonus(isKeeper bool, playerValue, avgValueAtOriginalRound float64, yearsRemaining int) float64 {
	if !isKeeper || yearsRemaining <= 0 {
		return 0
	}
	surplus := playerValue - avgValueAtOriginalRound
	if surplus <= 0 {
		return 0
	}
	return surplus * float64(yearsRemaining) / float64(r.cfg.MaxYears)
}

// ApplyExpirationPenalty reduces a keeper's effective value when its
// contract has no seasons left after the current one.
func (r *Rules) ApplyExpirationPenalty(value float64, yearsRemaining int) float64 {
	if yearsRemaining > 0 {
		return value
	}
	return value * (1 - r.cfg.ExpirationPenalty)
}

// EliteValue returns the keeper-adjusted value marking the elite bucket.
func (r *Rules) EliteValue() float64 { return r.cfg.EliteKeeperValue }

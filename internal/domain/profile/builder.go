// Package profile aggregates a roster into its position-depth and
// category strength/weakness signature.
package profile

import (
	"fmt"
	"sort"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
)

// Builder constructs TeamProfiles against league-wide context.
type Builder struct {
	cfg config.Profile
}

// NewBuilder creates a profile builder from configuration.
func NewBuilder(cfg config.Profile) *Builder {
	return &Builder{cfg: cfg}
}

// Build produces the profile for one team. teamDists must hold per-team
// total distributions for every category; eliteKeeperValue marks the elite
// keeper bucket. The returned profile is read-only.
func (b *Builder) Build(team *model.Team, league *model.LeagueSnapshot, teamDists category.Distributions, eliteKeeperValue float64) (*model.TeamProfile, error) {
	if team == nil || league == nil || len(league.Teams) == 0 {
		return nil, fmt.Errorf("profile build: %w", model.ErrIncompleteProfile)
	}

	p := &model.TeamProfile{
		Team:             team.Name,
		PositionCount:    PositionCounts(team),
		PositionSurplus:  make(map[model.Position]float64),
		CategoryZ:        make(map[category.ID]float64),
		CategoryStrength: make(map[category.ID]model.Strength),
	}

	p.FlexSkaters = flexSkaters(team)

	leagueAvg := b.leagueAverageCounts(league)
	flexBonus := b.cfg.FlexBonusRate * float64(p.FlexSkaters)
	for _, pos := range model.AllPositions() {
		p.PositionSurplus[pos] = p.PositionCount[pos] - leagueAvg[pos] + flexBonus
	}

	rosters := make([]map[category.ID]float64, 0, len(team.Roster))
	for _, player := range team.Roster {
		rosters = append(rosters, player.Stats)
	}
	for _, id := range category.All() {
		z := teamDists.Z(id, category.TeamTotal(rosters, id))
		p.CategoryZ[id] = z
		p.CategoryStrength[id] = b.classify(z)
	}

	b.fillKeeperBuckets(p, team, eliteKeeperValue)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile build for %s: %w", team.Name, err)
	}
	return p, nil
}

// PositionCounts computes fractional depth: a skater eligible at N
// non-goalie positions contributes 1/N to each; a goalie counts as 1
// toward the goalie slot only.
func PositionCounts(team *model.Team) map[model.Position]float64 {
	counts := make(map[model.Position]float64, len(model.AllPositions()))
	for _, pos := range model.AllPositions() {
		counts[pos] = 0
	}
	for _, p := range team.Roster {
		if p.IsGoalie() {
			counts[model.Goalie]++
			continue
		}
		n := p.SkaterPositionCount()
		if n == 0 {
			continue
		}
		share := 1 / float64(n)
		for _, pos := range p.Positions {
			if pos != model.Goalie {
				counts[pos] += share
			}
		}
	}
	return counts
}

func flexSkaters(team *model.Team) int {
	n := 0
	for _, p := range team.Roster {
		if !p.IsGoalie() && p.SkaterPositionCount() > 1 {
			n++
		}
	}
	return n
}

func (b *Builder) leagueAverageCounts(league *model.LeagueSnapshot) map[model.Position]float64 {
	avg := make(map[model.Position]float64, len(model.AllPositions()))
	for _, team := range league.Teams {
		for pos, count := range PositionCounts(team) {
			avg[pos] += count
		}
	}
	n := float64(len(league.Teams))
	for pos := range avg {
		avg[pos] /= n
	}
	return avg
}

func (b *Builder) classify(z float64) model.Strength {
	switch {
	case z >= b.cfg.EliteZ:
		return model.StrengthElite
	case z >= b.cfg.StrongZ:
		return model.StrengthStrong
	case z <= b.cfg.CriticalZ:
		return model.StrengthCritical
	case z <= b.cfg.WeakZ:
		return model.StrengthWeak
	default:
		return model.StrengthNeutral
	}
}

// fillKeeperBuckets splits rostered keepers into expiring (one season of
// control left), fresh (two or more), and elite (keeper-adjusted value at
// or above the elite threshold).
func (b *Builder) fillKeeperBuckets(p *model.TeamProfile, team *model.Team, eliteValue float64) {
	for _, player := range team.Roster {
		k := player.Keeper
		if k == nil || !k.IsKeeper {
			continue
		}
		switch {
		case k.YearsRemaining == 1:
			p.ExpiringKeepers = append(p.ExpiringKeepers, player.Name)
		case k.YearsRemaining >= 2:
			p.FreshKeepers = append(p.FreshKeepers, player.Name)
		}
		if player.Value+k.Bonus >= eliteValue {
			p.EliteKeepers = append(p.EliteKeepers, player.Name)
		}
	}
	sort.Strings(p.ExpiringKeepers)
	sort.Strings(p.FreshKeepers)
	sort.Strings(p.EliteKeepers)
}

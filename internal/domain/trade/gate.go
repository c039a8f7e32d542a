package trade

import (
	"math"
	"strings"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/domain/profile"
)

// Gate discard reasons, reported to metrics.
const (
	DropBlankPartner   = "blank_partner"
	DropEmptySide      = "empty_side"
	DropBadAssetName   = "bad_asset_name"
	DropNonFiniteValue = "non_finite_value"
	DropBadPickRound   = "bad_pick_round"
	DropNearWorthless  = "near_worthless"
	DropHardLossFloor  = "hard_loss_floor"
	DropEliteGiveaway  = "elite_giveaway"
	DropRosterMinimum  = "roster_minimum"
)

// Validate runs the ordered discard rules. A failing candidate is dropped
// with a reason, never raised as an error. Rule order: structural checks
// first, then the hard loss floor, elite protection, and post-trade roster
// minimums for both sides.
func (e *Engine) Validate(c *model.TradeCandidate, target, partner *TeamContext) (reason string, ok bool) {
	if strings.TrimSpace(c.Partner) == "" {
		return DropBlankPartner, false
	}
	if len(c.Outgoing) == 0 || len(c.Incoming) == 0 {
		return DropEmptySide, false
	}

	allAssets := make([]model.Asset, 0, len(c.Outgoing)+len(c.Incoming))
	allAssets = append(allAssets, c.Outgoing...)
	allAssets = append(allAssets, c.Incoming...)
	worthless := true
	for _, a := range allAssets {
		name := strings.TrimSpace(a.Name)
		if name == "" || strings.Contains(strings.ToLower(name), "undefined") {
			return DropBadAssetName, false
		}
		if math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
			return DropNonFiniteValue, false
		}
		if a.IsPick() && (a.PickRound < 1 || a.PickRound > e.maxPickRound) {
			return DropBadPickRound, false
		}
		if a.Value >= e.cfg.NearWorthlessFloor {
			worthless = false
		}
	}
	if worthless {
		return DropNearWorthless, false
	}

	if c.NetValue < -e.cfg.HardLossFloor {
		return DropHardLossFloor, false
	}

	if !e.passesEliteGiveaway(c) {
		return DropEliteGiveaway, false
	}

	if !e.rosterMinimumsHold(target.Team, partner.Team, c.Outgoing, c.Incoming) {
		return DropRosterMinimum, false
	}
	if !e.rosterMinimumsHold(partner.Team, target.Team, c.Incoming, c.Outgoing) {
		return DropRosterMinimum, false
	}

	return "", true
}

// passesEliteGiveaway blocks giving an elite scorer away without an
// elite-caliber return, a multi-player package back, or an unusually large
// net gain.
func (e *Engine) passesEliteGiveaway(c *model.TradeCandidate) bool {
	givesElite := false
	for _, a := range c.Outgoing {
		if !a.IsPick() && a.Value > e.cfg.EliteValue {
			givesElite = true
			break
		}
	}
	if !givesElite {
		return true
	}
	if len(c.Incoming) >= 2 || c.NetValue >= e.cfg.EliteMinGain {
		return true
	}
	for _, a := range c.Incoming {
		if !a.IsPick() && a.Value >= e.cfg.EliteAltValue {
			return true
		}
	}
	return false
}

// rosterMinimumsHold simulates the post-trade roster for one side and
// checks every configured fractional position minimum. Pick assets do not
// change roster composition.
func (e *Engine) rosterMinimumsHold(team, other *model.Team, giving, receiving []model.Asset) bool {
	leaving := make(map[string]bool, len(giving))
	for _, a := range giving {
		if !a.IsPick() {
			leaving[a.Name] = true
		}
	}

	post := &model.Team{Name: team.Name}
	for _, p := range team.Roster {
		if !leaving[p.Name] {
			post.Roster = append(post.Roster, p)
		}
	}
	for _, a := range receiving {
		if a.IsPick() {
			continue
		}
		if p := findPlayer(other, a.Name); p != nil {
			post.Roster = append(post.Roster, p)
		}
	}

	counts := profile.PositionCounts(post)
	for pos, min := range e.rosterMin {
		if counts[pos] < min {
			return false
		}
	}
	return true
}

func findPlayer(team *model.Team, name string) *model.Player {
	for _, p := range team.Roster {
		if p.Name == name {
			return p
		}
	}
	return nil
}

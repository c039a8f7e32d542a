package trade

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
)

// categoryGain measures how a bundle shifts the target's category totals:
// gains in weak categories are weighted up (critical even more), and a net
// weakening of a strong category is penalized. The raw sum is clamped to
// the configured symmetric range so one huge but narrow swing cannot buy
// an otherwise bad value trade.
func (e *Engine) categoryGain(profile *model.TeamProfile, outgoing, incoming []*model.Player) (raw, clamped float64, notes []string) {
	for _, id := range category.All() {
		strength, ok := profile.CategoryStrength[id]
		if !ok {
			continue
		}
		swing := categorySwing(id, outgoing, incoming)
		if swing == 0 {
			continue
		}
		switch strength {
		case model.StrengthCritical:
			raw += swing * e.cfg.WeakCategoryBoost * 1.25
			notes = append(notes, note(id, swing))
		case model.StrengthWeak:
			raw += swing * e.cfg.WeakCategoryBoost
			notes = append(notes, note(id, swing))
		case model.StrengthStrong, model.StrengthElite:
			if swing < 0 {
				raw += swing * e.cfg.StrongErosionRate
				notes = append(notes, note(id, swing))
			}
		}
	}
	sort.Strings(notes)

	clamped = raw
	if clamped > e.cfg.CategoryGainClamp {
		clamped = e.cfg.CategoryGainClamp
	}
	if clamped < -e.cfg.CategoryGainClamp {
		clamped = -e.cfg.CategoryGainClamp
	}
	return raw, clamped, notes
}

// categorySwing is incoming minus outgoing current-period totals for one
// category, sign-inverted where a lower raw value is better.
func categorySwing(id category.ID, outgoing, incoming []*model.Player) float64 {
	var in, out float64
	for _, p := range incoming {
		in += p.Stats[id]
	}
	for _, p := range outgoing {
		out += p.Stats[id]
	}
	swing := in - out
	if id.LowerIsBetter() {
		swing = -swing
	}
	return swing
}

func note(id category.ID, swing float64) string {
	verb := "improves"
	if swing < 0 {
		verb = "weakens"
	}
	label := strings.ReplaceAll(string(id), "_", " ")
	return fmt.Sprintf("%s %s (%+.1f)", verb, label, swing)
}

// keeperImpact is the net change in keeper-bonus value, with a bonus for
// moving expiring keepers out and a penalty for shedding valuable fresh
// keepers.
func (e *Engine) keeperImpact(outgoing, incoming []*model.Player) (float64, string) {
	var impact float64
	var parts []string

	for _, p := range incoming {
		if k := p.Keeper; k != nil && k.IsKeeper {
			impact += k.Bonus
		}
	}
	for _, p := range outgoing {
		k := p.Keeper
		if k == nil || !k.IsKeeper {
			continue
		}
		impact -= k.Bonus
		switch {
		case k.YearsRemaining == 1:
			impact += e.cfg.ExpiringMoveBonus
			parts = append(parts, fmt.Sprintf("moves expiring keeper %s", p.Name))
		case k.YearsRemaining >= 2 && k.Bonus >= e.cfg.FreshShedBonusMin:
			impact -= e.cfg.FreshShedPenalty
			parts = append(parts, fmt.Sprintf("sheds fresh keeper %s", p.Name))
		}
	}

	sort.Strings(parts)
	return impact, strings.Join(parts, "; ")
}

// Score combines value delta, clamped category gain and keeper impact into
// one ranking number. Category fit dominates pure value, matching
// head-to-head category-league reality. A sidegrade penalty suppresses
// swaps that change nothing meaningful.
func (e *Engine) Score(c *model.TradeCandidate) {
	score := c.NetValue*e.cfg.ValueWeight + c.CategoryGain*e.cfg.CategoryWeight + c.KeeperImpact

	if math.Abs(c.NetValue) < e.cfg.SidegradeValueEps && math.Abs(c.CategoryGain) < e.cfg.SidegradeCategoryEps {
		score -= e.cfg.SidegradePenalty
	}

	c.Score = score
}

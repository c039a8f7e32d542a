// Package valuation converts normalized category totals into a single
// bounded value per player and per draft pick. The whole pipeline is pure:
// identical snapshots always produce identical values.
package valuation

import (
	"math"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/category"
	"github.com/benchboss/tradewinds/internal/domain/model"
)

// Engine values players against league-wide player distributions computed
// once per snapshot.
type Engine struct {
	cfg         config.Valuation
	skaterDists category.Distributions
	goalieDists category.Distributions
}

// NewEngine builds an engine for one immutable snapshot. Distributions are
// computed over blended (current + prior) player totals, skaters and
// goalies separately.
func NewEngine(cfg config.Valuation, players []*model.Player) *Engine {
	e := &Engine{cfg: cfg}

	var skaters, goalies []map[category.ID]float64
	for _, p := range players {
		blended := e.blendedTotals(p)
		if p.IsGoalie() {
			goalies = append(goalies, blended)
		} else {
			skaters = append(skaters, blended)
		}
	}
	e.skaterDists = category.ComputePlayerDistributions(skaters, category.Skater())
	e.goalieDists = category.ComputePlayerDistributions(goalies, category.Goalie())
	return e
}

// Bounds returns the effective value band after the widened re-clamp.
func (e *Engine) Bounds() (min, max float64) {
	return e.cfg.MinValue, e.cfg.MaxValue + e.cfg.WidenedUpperMargin
}

// Blended returns the history-blended total for one category: recent-period
// weight applied to the current total, prior weight to the previous period,
// zero standing in where no history exists.
func (e *Engine) Blended(p *model.Player, id category.ID) float64 {
	return e.cfg.RecentWeight*p.Stats[id] + e.cfg.PriorWeight*p.PriorStats[id]
}

func (e *Engine) blendedTotals(p *model.Player) map[category.ID]float64 {
	out := make(map[category.ID]float64, len(p.Stats))
	for _, id := range category.All() {
		if v := e.Blended(p, id); v != 0 {
			out[id] = v
		}
	}
	return out
}

// Value computes the bounded scalar value for a player.
func (e *Engine) Value(p *model.Player) float64 {
	if p.IsGoalie() {
		return e.valueGoalie(p)
	}
	return e.valueSkater(p)
}

// ValueAll values every rostered player in place and returns the count.
func (e *Engine) ValueAll(snapshot *model.LeagueSnapshot) int {
	n := 0
	for _, team := range snapshot.Teams {
		for _, p := range team.Roster {
			p.Value = e.Value(p)
			n++
		}
	}
	return n
}

// valueSkater runs the skater pipeline. Stage order matters and mirrors the
// league's valuation rules: weighted z-sum with the grind cap, base
// conversion, scarcity and market multipliers, tier floors, clamp, spread
// re-introduction, tie-break adjustment, widened re-clamp, rookie discount,
// near-elite suppression, and the franchise floor last.
func (e *Engine) valueSkater(p *model.Player) float64 {
	weighted := e.skaterWeightedSum(p)

	v := weighted*e.cfg.Scale + e.cfg.Baseline

	v *= e.positionMultiplier(p)

	if p.HasPosition(model.Defense) && v < e.cfg.DefenseEliteBase {
		v *= e.cfg.DefenseDampening
	}

	points := e.seasonPoints(p)
	v *= e.marketTierMultiplier(points)

	switch {
	case points >= e.cfg.ElitePoints && v < e.cfg.EliteScorerFloor:
		v = e.cfg.EliteScorerFloor
	case points >= e.cfg.ScorerPoints && v < e.cfg.ScorerFloor:
		v = e.cfg.ScorerFloor
	}

	v = clamp(v, e.cfg.MinValue, e.cfg.MaxValue)

	// Spread: elite players pushed into the clamp stay distinguishable.
	v += weighted * e.cfg.SpreadRate

	// Tie-break adjustment: a pure function of the player's own raw stats.
	// Never a random source; identical inputs must yield identical output.
	v += tieBreak(p)

	v = clamp(v, e.cfg.MinValue, e.cfg.MaxValue+e.cfg.WidenedUpperMargin)

	if !p.HasHistory() && points >= e.cfg.RookieMinPoints {
		v *= e.cfg.RookieDiscount
	}

	if v >= e.cfg.NearEliteValue && points < e.cfg.ElitePoints {
		v *= e.cfg.NearEliteSuppression
	}

	if points >= e.cfg.FranchisePoints || e.Blended(p, category.Goals) >= e.cfg.FranchiseGoals {
		if v < e.cfg.FranchiseFloor {
			v = e.cfg.FranchiseFloor
		}
		v += e.cfg.FranchiseBonus
	}

	return clamp(v, e.cfg.MinValue, e.cfg.MaxValue+e.cfg.WidenedUpperMargin)
}

// skaterWeightedSum blends, standardizes and weights every skater category,
// capping the grind-category share of the total absolute contribution.
func (e *Engine) skaterWeightedSum(p *model.Player) float64 {
	var coreSum, grindSum, totalAbs, grindAbs float64
	for _, id := range category.Skater() {
		z := e.skaterDists.Z(id, e.Blended(p, id))
		c := z * e.cfg.CategoryWeights[string(id)]
		totalAbs += math.Abs(c)
		if id.Grind() {
			grindSum += c
			grindAbs += math.Abs(c)
		} else {
			coreSum += c
		}
	}
	if allowed := e.cfg.GrindShareCap * totalAbs; grindAbs > allowed && grindAbs > 0 {
		grindSum *= allowed / grindAbs
	}
	return coreSum + grindSum
}

// valueGoalie runs the goalie pipeline: five-category weighted z-sum scaled
// by a starts-based reliability factor, plus a workload bonus.
func (e *Engine) valueGoalie(p *model.Player) float64 {
	var weighted float64
	for _, id := range category.Goalie() {
		z := e.goalieDists.Z(id, e.Blended(p, id))
		weighted += z * e.cfg.CategoryWeights[string(id)]
	}

	// Square root keeps small sample sizes from being crushed outright.
	reliability := 1.0
	if e.cfg.GoalieBaselineStarts > 0 {
		reliability = math.Sqrt(math.Min(1, float64(p.Starts)/e.cfg.GoalieBaselineStarts))
	}
	weighted *= reliability

	v := weighted*e.cfg.Scale + e.cfg.Baseline

	workload := float64(p.Decisions) * e.cfg.GoalieWorkloadRate
	if workload > e.cfg.GoalieWorkloadCeiling {
		workload = e.cfg.GoalieWorkloadCeiling
	}
	v += workload

	v = clamp(v, e.cfg.MinValue, e.cfg.MaxValue)
	v += tieBreak(p)
	return clamp(v, e.cfg.MinValue, e.cfg.MaxValue+e.cfg.WidenedUpperMargin)
}

// seasonPoints approximates blended season points, falling back to
// goals+assists when the points category is not tracked.
func (e *Engine) seasonPoints(p *model.Player) float64 {
	if pts := e.Blended(p, category.Points); pts > 0 {
		return pts
	}
	return e.Blended(p, category.Goals) + e.Blended(p, category.Assists)
}

func (e *Engine) positionMultiplier(p *model.Player) float64 {
	best := 1.0
	found := false
	for _, pos := range p.Positions {
		m, ok := e.cfg.PositionMultipliers[string(pos)]
		if !ok {
			continue
		}
		if !found || m > best {
			best = m
			found = true
		}
	}
	return best
}

func (e *Engine) marketTierMultiplier(points float64) float64 {
	switch {
	case points >= e.cfg.TierOnePoints:
		return e.cfg.TierOneMult
	case points >= e.cfg.TierTwoPoints:
		return e.cfg.TierTwoMult
	case points >= e.cfg.TierThreeGate:
		return e.cfg.TierThreeMult
	}
	return 1.0
}

// tieBreak derives a small deterministic offset in [0, 0.1) from the
// player's raw current-period stats so equal-value players order stably.
func tieBreak(p *model.Player) float64 {
	var acc float64
	for i, id := range category.All() {
		acc += p.Stats[id] * float64(2*i+3)
	}
	acc += float64(p.Starts)*1.7 + float64(p.Decisions)*2.9
	return math.Mod(math.Abs(acc), 97) / 970
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

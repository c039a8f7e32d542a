package valuation

import (
	"sort"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// pickDecay shrinks each unsampled later round relative to the one before.
const pickDecay = 0.85

// PickValues derives a value per draft round from the snapshot's player
// value distribution: round r is worth the average value of the players
// ranked into that round's slots. Rounds beyond the player pool decay
// geometrically toward the valuation floor.
func (e *Engine) PickValues(snapshot *model.LeagueSnapshot, rounds int) map[int]float64 {
	var values []float64
	for _, team := range snapshot.Teams {
		for _, p := range team.Roster {
			values = append(values, p.Value)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	teamCount := len(snapshot.Teams)
	if teamCount == 0 {
		teamCount = 1
	}

	out := make(map[int]float64, rounds)
	prev := e.cfg.MaxValue
	for r := 1; r <= rounds; r++ {
		lo := (r - 1) * teamCount
		hi := r * teamCount
		if hi > len(values) {
			hi = len(values)
		}
		if lo >= hi {
			// Past the pool; decay from the previous round.
			v := prev * pickDecay
			if v < e.cfg.MinValue {
				v = e.cfg.MinValue
			}
			out[r] = v
			prev = v
			continue
		}
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		v := sum / float64(hi-lo)
		out[r] = v
		prev = v
	}
	return out
}

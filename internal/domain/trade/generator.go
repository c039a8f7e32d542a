package trade

import (
	"sort"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// generate enumerates small asset bundles between the target and one
// partner: 1-for-1 pairings plus 2-for-1 packages in both directions over
// each side's top-K tradeable players. Hard pre-filters (elite protection,
// keeper lock, fairness window) cut bundles before any scoring work.
func (e *Engine) generate(target, partner *TeamContext) []model.TradeCandidate {
	give := e.tradeable(target.Team)
	get := e.tradeable(partner.Team)

	var out []model.TradeCandidate
	for _, outgoing := range give {
		for _, incoming := range get {
			if c, ok := e.propose(target, partner, []*model.Player{outgoing}, []*model.Player{incoming}); ok {
				out = append(out, c)
			}
		}
	}

	// Two-for-one packages: consolidate depth into one better player, or
	// split one player into two partner pieces.
	for i := 0; i < len(give); i++ {
		for j := i + 1; j < len(give); j++ {
			for _, incoming := range get {
				if c, ok := e.propose(target, partner, []*model.Player{give[i], give[j]}, []*model.Player{incoming}); ok {
					out = append(out, c)
				}
			}
		}
	}
	for _, outgoing := range give {
		for i := 0; i < len(get); i++ {
			for j := i + 1; j < len(get); j++ {
				if c, ok := e.propose(target, partner, []*model.Player{outgoing}, []*model.Player{get[i], get[j]}); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// tradeable filters a roster to movable players: value inside the fairness
// band and not long-term injured, then keeps the top-K by value. Ties
// break on name so repeated runs enumerate identically.
func (e *Engine) tradeable(team *model.Team) []*model.Player {
	players := make([]*model.Player, 0, len(team.Roster))
	for _, p := range team.Roster {
		if p.Injured {
			continue
		}
		if p.Value < e.cfg.TradeableMin || p.Value > e.cfg.TradeableMax {
			continue
		}
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Value != players[j].Value {
			return players[i].Value > players[j].Value
		}
		return players[i].Name < players[j].Name
	})
	if len(players) > e.cfg.TopK {
		players = players[:e.cfg.TopK]
	}
	return players
}

// propose builds a candidate for one bundle, applying the pre-filters.
func (e *Engine) propose(target, partner *TeamContext, outgoing, incoming []*model.Player) (model.TradeCandidate, bool) {
	netValue := sumValues(incoming) - sumValues(outgoing)

	if !e.passesEliteProtection(outgoing, incoming, netValue) {
		return model.TradeCandidate{}, false
	}
	if !e.passesKeeperLock(outgoing, incoming, netValue) {
		return model.TradeCandidate{}, false
	}

	rawGain, clampedGain, notes := e.categoryGain(target.Profile, outgoing, incoming)

	if !e.passesFairnessWindow(netValue, rawGain) {
		return model.TradeCandidate{}, false
	}

	keeperImpact, keeperNote := e.keeperImpact(outgoing, incoming)

	return model.TradeCandidate{
		Partner:       partner.Team.Name,
		Outgoing:      toAssets(outgoing),
		Incoming:      toAssets(incoming),
		NetValue:      netValue,
		CategoryGain:  clampedGain,
		CategoryNotes: notes,
		KeeperImpact:  keeperImpact,
		KeeperNote:    keeperNote,
	}, true
}

// passesEliteProtection rejects moving an elite-tier player unless the
// loss is a small fraction of his value or the return compensates: an
// elite-caliber piece back, or a clear net gain.
func (e *Engine) passesEliteProtection(outgoing, incoming []*model.Player, netValue float64) bool {
	for _, p := range outgoing {
		if p.Value <= e.cfg.EliteValue {
			continue
		}
		if netValue >= -e.cfg.EliteLossPct*p.Value {
			continue
		}
		if netValue >= e.cfg.EliteMinGain || maxValue(incoming) >= e.cfg.EliteAltValue {
			continue
		}
		return false
	}
	return true
}

// passesKeeperLock refuses to move a high-surplus, soon-expiring keeper
// for a non-keeper return unless the value gain clears the minimum bar.
func (e *Engine) passesKeeperLock(outgoing, incoming []*model.Player, netValue float64) bool {
	for _, p := range outgoing {
		k := p.Keeper
		if k == nil || !k.IsKeeper {
			continue
		}
		if k.Bonus < e.cfg.KeeperLockSurplus || k.YearsRemaining != 1 {
			continue
		}
		if anyKeeper(incoming) || netValue >= e.cfg.KeeperLockMinGain {
			continue
		}
		return false
	}
	return true
}

// passesFairnessWindow rejects deltas beyond the ceiling unless a strong
// category gain justifies a modest extension.
func (e *Engine) passesFairnessWindow(netValue, rawGain float64) bool {
	abs := netValue
	if abs < 0 {
		abs = -abs
	}
	if abs <= e.cfg.FairnessCeiling {
		return true
	}
	return rawGain >= e.cfg.FairnessCategoryGate && abs <= e.cfg.FairnessExtendedCeiling
}

// bestPerPartner keeps only the strongest few candidates for one partner
// to bound the search output.
func (e *Engine) bestPerPartner(candidates []model.TradeCandidate) []model.TradeCandidate {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Signature() < candidates[j].Signature()
	})
	if len(candidates) > e.cfg.MaxPerPartner {
		candidates = candidates[:e.cfg.MaxPerPartner]
	}
	return candidates
}

func toAssets(players []*model.Player) []model.Asset {
	assets := make([]model.Asset, len(players))
	for i, p := range players {
		assets[i] = model.Asset{Name: p.Name, Value: p.Value, Keeper: p.Keeper}
	}
	return assets
}

func sumValues(players []*model.Player) float64 {
	var sum float64
	for _, p := range players {
		sum += p.Value
	}
	return sum
}

func maxValue(players []*model.Player) float64 {
	var best float64
	for _, p := range players {
		if p.Value > best {
			best = p.Value
		}
	}
	return best
}

func anyKeeper(players []*model.Player) bool {
	for _, p := range players {
		if p.Keeper != nil && p.Keeper.IsKeeper {
			return true
		}
	}
	return false
}

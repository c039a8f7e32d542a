package trade

import (
	"sort"

	"github.com/benchboss/tradewinds/internal/domain/dedupe"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/metrics"
)

// Rank is the single-threaded reduction over all partner-local results:
// sort by score descending (signature breaks ties so output is
// order-independent), drop signature duplicates, truncate to top-N.
func (e *Engine) Rank(candidates []model.TradeCandidate) []model.TradeCandidate {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Signature() < candidates[j].Signature()
	})

	seen := dedupe.NewSet()
	ranked := make([]model.TradeCandidate, 0, e.cfg.TopN)
	for i := range candidates {
		if seen.SeenAndRecord(candidates[i].Signature()) {
			metrics.RecordDuplicateTrade()
			continue
		}
		ranked = append(ranked, candidates[i])
		if len(ranked) == e.cfg.TopN {
			break
		}
	}
	return ranked
}

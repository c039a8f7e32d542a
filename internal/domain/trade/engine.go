// Package trade enumerates, validates, scores and ranks multi-asset trade
// candidates between a target roster and partner rosters. Every stage is a
// pure transformation over immutable inputs; the candidate progresses
// Generated -> Scored -> Labeled -> Ranked without in-place surprises.
package trade

import (
	"fmt"

	"github.com/benchboss/tradewinds/internal/config"
	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/metrics"
)

// TeamContext bundles the immutable per-team inputs one search needs.
type TeamContext struct {
	Team    *model.Team
	Profile *model.TeamProfile
}

// PartnerResult is the partner-local output of one search, merged by the
// single-threaded reduction.
type PartnerResult struct {
	Partner    string
	Candidates []model.TradeCandidate
	Err        error
}

// PartnerJob is one unit of fan-out work: search a single partner team.
type PartnerJob struct {
	Target  *TeamContext
	Partner *TeamContext
	Results chan<- PartnerResult
}

// Engine holds the tunables shared by the generator, gate, scorer and
// confidence estimator.
type Engine struct {
	cfg          config.Trade
	conf         config.Confidence
	rosterMin    map[model.Position]float64
	maxPickRound int
}

// NewEngine creates a trade engine. rosterMin maps position tags to the
// fractional post-trade minimums; maxPickRound bounds valid pick assets.
func NewEngine(cfg config.Trade, conf config.Confidence, rosterMin map[string]float64, maxPickRound int) *Engine {
	mins := make(map[model.Position]float64, len(rosterMin))
	for pos, min := range rosterMin {
		mins[model.Position(pos)] = min
	}
	return &Engine{cfg: cfg, conf: conf, rosterMin: mins, maxPickRound: maxPickRound}
}

// SearchPartner runs the full partner-local pipeline: generate bundles,
// gate, score and label them, keeping the best few. Incomplete profiles
// are a caller contract violation and surface as an error.
func (e *Engine) SearchPartner(target, partner *TeamContext) ([]model.TradeCandidate, error) {
	if err := target.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("target %s: %w", target.Team.Name, err)
	}
	if err := partner.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("partner %s: %w", partner.Team.Name, err)
	}

	candidates := e.generate(target, partner)
	metrics.RecordCandidatesGenerated(len(candidates))

	kept := candidates[:0]
	for i := range candidates {
		c := &candidates[i]
		if reason, ok := e.Validate(c, target, partner); !ok {
			metrics.RecordCandidateDropped(reason)
			continue
		}
		metrics.RecordCandidateKept()
		e.Score(c)
		c.Confidence = e.Confidence(c)
		kept = append(kept, *c)
	}

	return e.bestPerPartner(kept), nil
}

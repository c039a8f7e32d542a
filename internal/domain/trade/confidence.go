package trade

import (
	"math"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// Confidence maps a scored candidate to a realism label. The base curve is
// a decreasing step function of |net value|; demonstrated category
// improvement lifts it by a bounded amount; hard caps then apply on both
// sides, because a heavy loss is a bad deal and an extreme win is a deal
// the counterparty will not take. The continuous score is bucketed into
// exactly three labels.
func (e *Engine) Confidence(c *model.TradeCandidate) model.Confidence {
	abs := math.Abs(c.NetValue)

	var score float64
	switch {
	case abs <= e.conf.TightBand:
		score = 0.92
	case abs <= e.conf.CloseBand:
		score = 0.82
	case abs <= e.conf.StretchBand:
		score = 0.60
	case abs <= e.conf.FarBand:
		score = 0.38
	case abs <= e.conf.OuterBand:
		score = 0.22
	default:
		score = 0.08
	}

	if c.CategoryGain > 0 {
		lift := c.CategoryGain * 0.01
		if lift > e.conf.CategoryLift {
			lift = e.conf.CategoryLift
		}
		score += lift
	}

	// Hard caps override the curve regardless of category fit.
	mediumCeiling := e.conf.HighCutoff - 0.05
	speculativeCeiling := e.conf.MediumCutoff - 0.05
	if c.NetValue < 0 {
		loss := -c.NetValue
		if loss > e.conf.LossSpeculativeCap {
			score = math.Min(score, speculativeCeiling)
		} else if loss > e.conf.LossMediumCap {
			score = math.Min(score, mediumCeiling)
		}
	} else {
		if c.NetValue > e.conf.WinSpeculativeCap {
			score = math.Min(score, speculativeCeiling)
		} else if c.NetValue > e.conf.WinMediumCap {
			score = math.Min(score, mediumCeiling)
		}
	}

	switch {
	case score >= e.conf.HighCutoff:
		return model.ConfidenceHigh
	case score >= e.conf.MediumCutoff:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceSpeculative
	}
}

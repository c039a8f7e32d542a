package model

import (
	"sort"
	"strings"
	"time"
)

// Confidence is the ordinal realism rating for a suggested trade.
type Confidence string

// Confidence labels, most to least likely to be accepted.
const (
	ConfidenceHigh        Confidence = "High"
	ConfidenceMedium      Confidence = "Medium"
	ConfidenceSpeculative Confidence = "Speculative"
)

// Asset is one side's trade piece: a player or a future draft pick.
type Asset struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	// PickRound is set for pick assets (1-16); zero for players.
	PickRound int `json:"pick_round,omitempty"`
	// Keeper carries the player's keeper state at proposal time, if any.
	Keeper *KeeperState `json:"keeper,omitempty"`
}

// IsPick reports whether the asset is a draft pick.
func (a Asset) IsPick() bool { return a.PickRound != 0 }

// TradeCandidate is one proposed swap. The generator creates it, the scorer
// adds Score, the confidence estimator adds Confidence; immutable afterward.
type TradeCandidate struct {
	Partner  string  `json:"partner"`
	Outgoing []Asset `json:"outgoing"`
	Incoming []Asset `json:"incoming"`

	// NetValue is incoming minus outgoing value for the proposing side.
	NetValue float64 `json:"net_value"`

	// CategoryGain is the clamped weak-category improvement.
	CategoryGain  float64  `json:"category_gain"`
	CategoryNotes []string `json:"category_notes,omitempty"`

	KeeperImpact float64 `json:"keeper_impact"`
	KeeperNote   string  `json:"keeper_note,omitempty"`

	Score      float64    `json:"score"`
	Confidence Confidence `json:"confidence"`
}

// Signature identifies a trade by its asset names and partner, independent
// of generation order, for deduplication.
func (c *TradeCandidate) Signature() string {
	out := assetNames(c.Outgoing)
	in := assetNames(c.Incoming)
	return strings.Join(out, ",") + "|" + strings.Join(in, ",") + "|" + c.Partner
}

func assetNames(assets []Asset) []string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Name
	}
	sort.Strings(names)
	return names
}

// Analysis result reason codes for an empty suggestion list.
const (
	ReasonOK                = ""
	ReasonNoFairCandidates  = "no_fair_candidates"
	ReasonProfileIncomplete = "profile_incomplete"
	ReasonUnknownTeam       = "unknown_team"
	ReasonNoPartners        = "no_partners"
)

// AnalysisResult is the outbound product of one analysis run.
type AnalysisResult struct {
	Target      string           `json:"target"`
	GeneratedAt time.Time        `json:"generated_at"`
	Suggestions []TradeCandidate `json:"suggestions"`
	// Reason explains an empty suggestion list; empty on success.
	Reason string `json:"reason,omitempty"`
}

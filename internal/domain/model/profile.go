package model

import (
	"errors"

	"github.com/benchboss/tradewinds/internal/domain/category"
)

// Strength classifies a team's standing in one category.
type Strength string

// Category strength levels, best to worst.
const (
	StrengthElite    Strength = "elite"
	StrengthStrong   Strength = "strong"
	StrengthNeutral  Strength = "neutral"
	StrengthWeak     Strength = "weak"
	StrengthCritical Strength = "critical"
)

// ErrIncompleteProfile marks a TeamProfile missing its category or position
// maps. This is a caller contract violation, not a degradable data gap.
var ErrIncompleteProfile = errors.New("incomplete team profile")

// TeamProfile is a roster's position-depth and category signature.
// Rebuilt whenever the roster or league averages change; read-only after.
type TeamProfile struct {
	Team string `json:"team"`

	// PositionCount holds fractional depth per position; a skater eligible
	// at N positions contributes 1/N to each.
	PositionCount map[Position]float64 `json:"position_count"`

	// PositionSurplus is count minus league average plus the flex bonus.
	PositionSurplus map[Position]float64 `json:"position_surplus"`

	// FlexSkaters counts multi-position skaters on the roster.
	FlexSkaters int `json:"flex_skaters"`

	CategoryZ        map[category.ID]float64  `json:"category_z"`
	CategoryStrength map[category.ID]Strength `json:"category_strength"`

	// Keeper buckets by player name.
	ExpiringKeepers []string `json:"expiring_keepers"`
	FreshKeepers    []string `json:"fresh_keepers"`
	EliteKeepers    []string `json:"elite_keepers"`
}

// Validate checks the structural contract downstream components rely on.
func (p *TeamProfile) Validate() error {
	if p == nil || p.Team == "" {
		return ErrIncompleteProfile
	}
	if len(p.PositionCount) == 0 || len(p.PositionSurplus) == 0 {
		return ErrIncompleteProfile
	}
	if len(p.CategoryZ) == 0 || len(p.CategoryStrength) == 0 {
		return ErrIncompleteProfile
	}
	return nil
}

// WeakCategories returns categories classified weak or critical.
func (p *TeamProfile) WeakCategories() []category.ID {
	return p.withStrength(StrengthWeak, StrengthCritical)
}

// StrongCategories returns categories classified strong or elite.
func (p *TeamProfile) StrongCategories() []category.ID {
	return p.withStrength(StrengthStrong, StrengthElite)
}

func (p *TeamProfile) withStrength(levels ...Strength) []category.ID {
	var out []category.ID
	for _, id := range category.All() {
		s, ok := p.CategoryStrength[id]
		if !ok {
			continue
		}
		for _, level := range levels {
			if s == level {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

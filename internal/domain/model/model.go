// Package model contains domain models passed between layers.
package model

import (
	"github.com/benchboss/tradewinds/internal/domain/category"
)

// Position is a roster position tag.
type Position string

// Roster positions.
const (
	Center    Position = "C"
	LeftWing  Position = "LW"
	RightWing Position = "RW"
	Defense   Position = "D"
	Goalie    Position = "G"
)

// SkaterPositions lists the non-goalie positions in display order.
func SkaterPositions() []Position {
	return []Position{Center, LeftWing, RightWing, Defense}
}

// AllPositions lists every roster position in display order.
func AllPositions() []Position {
	return []Position{Center, LeftWing, RightWing, Defense, Goalie}
}

// KeeperState describes a player's keeper contract.
type KeeperState struct {
	IsKeeper       bool `json:"is_keeper"`
	OriginalRound  int  `json:"original_round"`
	YearIndex      int  `json:"year_index"` // 0-based season of the contract
	YearsRemaining int  `json:"years_remaining"`
	// RoundCost is the round the keeper currently occupies; 0 = unkeepable.
	RoundCost int `json:"round_cost"`
	// Bonus is the computed contract surplus, recomputed each analysis run.
	Bonus float64 `json:"bonus"`
}

// Player is one rostered athlete. RawStats arrive labeled from the
// provider; Stats and PriorStats hold normalized catalog totals. Value and
// the keeper bonus are recomputed on every analysis run and never persisted.
type Player struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Positions []Position `json:"positions"`

	RawStats      map[string]float64 `json:"raw_stats,omitempty"`
	RawPriorStats map[string]float64 `json:"raw_prior_stats,omitempty"`

	Stats      map[category.ID]float64 `json:"stats,omitempty"`
	PriorStats map[category.ID]float64 `json:"prior_stats,omitempty"`

	// Goalie workload; zero for skaters.
	Starts    int `json:"starts,omitempty"`
	Decisions int `json:"decisions,omitempty"`

	Injured bool `json:"injured,omitempty"` // long-term injured reserve

	Value  float64      `json:"value"`
	Keeper *KeeperState `json:"keeper,omitempty"`
}

// IsGoalie reports whether the player is goalie-eligible. Goalies are
// treated as goalies only, regardless of other listed tags.
func (p *Player) IsGoalie() bool {
	for _, pos := range p.Positions {
		if pos == Goalie {
			return true
		}
	}
	return false
}

// HasPosition reports eligibility at pos.
func (p *Player) HasPosition(pos Position) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}

// SkaterPositionCount returns the number of eligible non-goalie positions.
func (p *Player) SkaterPositionCount() int {
	n := 0
	for _, pos := range p.Positions {
		if pos != Goalie {
			n++
		}
	}
	return n
}

// HasHistory reports whether any prior-period totals exist.
func (p *Player) HasHistory() bool {
	return len(p.PriorStats) > 0 || len(p.RawPriorStats) > 0
}

// Team is one franchise: its roster plus currently owned draft rounds.
type Team struct {
	Name        string    `json:"name"`
	Roster      []*Player `json:"roster"`
	OwnedRounds []int     `json:"owned_rounds"`
}

// OwnsRound reports whether the team still holds the given draft round.
func (t *Team) OwnsRound(round int) bool {
	for _, r := range t.OwnedRounds {
		if r == round {
			return true
		}
	}
	return false
}

// LeagueSnapshot is the immutable input to one analysis run.
type LeagueSnapshot struct {
	Teams []*Team `json:"teams"`
}

// Team returns the named team, or nil.
func (s *LeagueSnapshot) Team(name string) *Team {
	for _, t := range s.Teams {
		if t.Name == name {
			return t
		}
	}
	return nil
}

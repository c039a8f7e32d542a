// Package category holds the single authoritative statistic catalog and the
// league distribution math built on top of it. Every other component speaks
// in these ids; free-form provider labels stop at the normalizer.
package category

// ID is a canonical statistic category identifier.
type ID string

// Skater scoring categories.
const (
	Goals     ID = "goals"
	Assists   ID = "assists"
	Points    ID = "points"
	PlusMinus ID = "plus_minus"
	PPPoints  ID = "powerplay_points"
	Shots     ID = "shots"
)

// Skater grind categories.
const (
	Hits        ID = "hits"
	Blocks      ID = "blocks"
	PenaltyMins ID = "penalty_minutes"
	FaceoffWins ID = "faceoff_wins"
)

// Goalie categories.
const (
	Wins        ID = "wins"
	Saves       ID = "saves"
	SavePct     ID = "save_pct"
	GoalsAgaAvg ID = "goals_against_avg"
	Shutouts    ID = "shutouts"
)

var skaterCategories = []ID{
	Goals, Assists, Points, PlusMinus, PPPoints, Shots,
	Hits, Blocks, PenaltyMins, FaceoffWins,
}

var goalieCategories = []ID{Wins, Saves, SavePct, GoalsAgaAvg, Shutouts}

var grind = map[ID]bool{
	Hits: true, Blocks: true, PenaltyMins: true, FaceoffWins: true,
}

var lowerIsBetter = map[ID]bool{
	GoalsAgaAvg: true,
}

var valid = func() map[ID]bool {
	m := make(map[ID]bool, len(skaterCategories)+len(goalieCategories))
	for _, id := range skaterCategories {
		m[id] = true
	}
	for _, id := range goalieCategories {
		m[id] = true
	}
	return m
}()

// Valid reports whether id is a catalog category.
func (id ID) Valid() bool { return valid[id] }

// Grind reports whether id is a low-priority grind category.
func (id ID) Grind() bool { return grind[id] }

// LowerIsBetter reports whether a smaller raw value is the good direction.
func (id ID) LowerIsBetter() bool { return lowerIsBetter[id] }

// Skater returns the skater category list. Callers must not mutate it.
func Skater() []ID { return skaterCategories }

// Goalie returns the goalie category list. Callers must not mutate it.
func Goalie() []ID { return goalieCategories }

// All returns every catalog category, skaters first.
func All() []ID {
	out := make([]ID, 0, len(skaterCategories)+len(goalieCategories))
	out = append(out, skaterCategories...)
	out = append(out, goalieCategories...)
	return out
}

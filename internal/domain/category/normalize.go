package category

import (
	"strings"
)

// aliases maps cleaned provider labels to catalog ids. Labels drift across
// providers ("PP Pts", "ppp", "power play points"); this table is the only
// place an alias may be added.
var aliases = map[string]ID{
	"g": Goals, "goal": Goals, "goals": Goals, "goals scored": Goals,
	"a": Assists, "assist": Assists, "assists": Assists,
	"p": Points, "pts": Points, "points": Points, "total points": Points,
	"+/-": PlusMinus, "plus minus": PlusMinus, "plus/minus": PlusMinus, "plusminus": PlusMinus,
	"ppp": PPPoints, "pp pts": PPPoints, "pp points": PPPoints,
	"power play points": PPPoints, "powerplay points": PPPoints,
	"sog": Shots, "shots": Shots, "shots on goal": Shots, "s": Shots,
	"hit": Hits, "hits": Hits,
	"blk": Blocks, "blks": Blocks, "block": Blocks, "blocks": Blocks, "blocked shots": Blocks,
	"pim": PenaltyMins, "penalty minutes": PenaltyMins, "penalty mins": PenaltyMins,
	"fw": FaceoffWins, "fow": FaceoffWins, "faceoff wins": FaceoffWins, "faceoffs won": FaceoffWins,
	"w": Wins, "win": Wins, "wins": Wins,
	"sv": Saves, "sva": Saves, "save": Saves, "saves": Saves,
	"sv%": SavePct, "save pct": SavePct, "save percentage": SavePct, "save %": SavePct,
	"gaa": GoalsAgaAvg, "goals against average": GoalsAgaAvg, "goals against avg": GoalsAgaAvg,
	"sho": Shutouts, "so": Shutouts, "shutout": Shutouts, "shutouts": Shutouts,
}

// Cache memoizes label lookups. It is an explicit object owned by the
// caller, not package state, so test runs stay isolated. A nil Cache
// disables memoization.
type Cache map[string]ID

// NewCache creates an empty lookup cache.
func NewCache() Cache { return make(Cache) }

// Normalize resolves a free-form statistic label to a catalog id.
// Cleaning lower-cases, trims, collapses whitespace and strips periods.
// Unknown labels return ok=false; the caller logs and drops them.
func Normalize(label string, cache Cache) (ID, bool) {
	cleaned := clean(label)
	if cleaned == "" {
		return "", false
	}
	if cache != nil {
		if id, ok := cache[cleaned]; ok {
			return id, id.Valid()
		}
	}
	id, ok := aliases[cleaned]
	if !ok {
		// A label may already be a canonical id.
		if candidate := ID(cleaned); candidate.Valid() {
			id, ok = candidate, true
		}
	}
	if ok && cache != nil {
		cache[cleaned] = id
	}
	return id, ok
}

func clean(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

package leaguegen

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/logger"
)

// Roster shape constants.
const (
	centersPerTeam    = 3
	wingsPerSide      = 3
	defensemenPerTeam = 4
	goaliesPerTeam    = 2
	draftRounds       = 16
)

// Archetype cases for skater generation.
const (
	caseFranchiseScorer = 0
	caseEliteScorer     = 1
	caseTopSix          = 2
	caseMiddleSix       = 3
	caseGrinder         = 4
	caseRookie          = 5
	caseDepth           = 6
	caseTwoWay          = 7
	archetypeCount      = 8
)

var teamNames = []string{
	"Harbor Hawks", "Iron Pines", "Granite Wolves", "Cedar Rapids",
	"North Brigade", "Ember Foxes", "Steel Herons", "Coastal Kings",
	"Prairie Thunder", "Summit Owls", "River Drakes", "Bay Mariners",
}

// Generate builds a deterministic league snapshot: the same seed always
// yields byte-identical rosters. Stat labels intentionally vary across
// provider spellings so the normalizer is exercised end to end.
func Generate(ctx context.Context, cfg *Config, stats *Stats) (*model.LeagueSnapshot, error) {
	if cfg.Teams < 2 {
		return nil, fmt.Errorf("league needs at least 2 teams, got %d", cfg.Teams)
	}
	if cfg.Teams > len(teamNames) {
		return nil, fmt.Errorf("league supports at most %d teams, got %d", len(teamNames), cfg.Teams)
	}

	logger.Get().Info(ctx, "generating league",
		logger.Int("teams", cfg.Teams),
		logger.Any("seed", cfg.Seed),
	)

	rng := rand.New(rand.NewSource(cfg.Seed))
	snapshot := &model.LeagueSnapshot{Teams: make([]*model.Team, 0, cfg.Teams)}
	for i := 0; i < cfg.Teams; i++ {
		team := generateTeam(rng, teamNames[i], i)
		snapshot.Teams = append(snapshot.Teams, team)
		stats.TeamsGenerated++
		stats.PlayersGenerated += len(team.Roster)
	}
	return snapshot, nil
}

func generateTeam(rng *rand.Rand, name string, teamIndex int) *model.Team {
	team := &model.Team{Name: name}

	serial := 0
	next := func(positions ...model.Position) *model.Player {
		serial++
		playerName := fmt.Sprintf("%s Skater %02d", name, serial)
		p := generateSkater(rng, playerName, serial%archetypeCount, positions)
		team.Roster = append(team.Roster, p)
		return p
	}

	for i := 0; i < centersPerTeam; i++ {
		next(model.Center)
	}
	for i := 0; i < wingsPerSide; i++ {
		// One wing per side is dual-eligible, the fantasy staple.
		if i == 0 {
			next(model.LeftWing, model.RightWing)
		} else {
			next(model.LeftWing)
		}
	}
	for i := 0; i < wingsPerSide; i++ {
		next(model.RightWing)
	}
	for i := 0; i < defensemenPerTeam; i++ {
		next(model.Defense)
	}
	for i := 0; i < goaliesPerTeam; i++ {
		serial++
		playerName := fmt.Sprintf("%s Goalie %02d", name, serial)
		team.Roster = append(team.Roster, generateGoalie(rng, playerName, i == 0))
	}

	assignKeepers(rng, team)
	team.OwnedRounds = ownedRounds(rng, teamIndex)
	return team
}

// generateSkater fills current and prior raw stat maps for one archetype.
// Labels rotate through provider spellings on purpose.
func generateSkater(rng *rand.Rand, name string, archetype int, positions []model.Position) *model.Player {
	var goals, assists float64
	switch archetype {
	case caseFranchiseScorer:
		goals, assists = 50+rng.Float64()*15, 55+rng.Float64()*20
	case caseEliteScorer:
		goals, assists = 38+rng.Float64()*12, 45+rng.Float64()*15
	case caseTopSix:
		goals, assists = 28+rng.Float64()*10, 32+rng.Float64()*12
	case caseMiddleSix:
		goals, assists = 18+rng.Float64()*8, 22+rng.Float64()*10
	case caseGrinder:
		goals, assists = 8+rng.Float64()*6, 10+rng.Float64()*8
	case caseRookie:
		goals, assists = 15+rng.Float64()*15, 18+rng.Float64()*15
	case caseDepth:
		goals, assists = 5+rng.Float64()*5, 7+rng.Float64()*6
	default: // caseTwoWay
		goals, assists = 15+rng.Float64()*10, 20+rng.Float64()*10
	}

	hits := rng.Float64() * 180
	blocks := rng.Float64() * 120
	if archetype == caseGrinder {
		hits = 180 + rng.Float64()*120
		blocks = 100 + rng.Float64()*80
	}

	raw := map[string]float64{
		pick(rng, "G", "Goals", "goals scored"):        round1(goals),
		pick(rng, "A", "Assists", "assist"):            round1(assists),
		pick(rng, "+/-", "Plus Minus", "plus/minus"):   round1(rng.Float64()*40 - 15),
		pick(rng, "PPP", "PP Pts", "powerplay points"): round1((goals + assists) * (0.25 + rng.Float64()*0.15)),
		pick(rng, "SOG", "Shots", "shots on goal"):     round1(goals*7 + rng.Float64()*40),
		pick(rng, "Hit", "Hits"):                       round1(hits),
		pick(rng, "BLK", "Blocked Shots", "blocks"):    round1(blocks),
		pick(rng, "PIM", "Penalty Minutes"):            round1(rng.Float64() * 70),
	}
	if hasPosition(positions, model.Center) {
		raw[pick(rng, "FW", "Faceoff Wins")] = round1(300 + rng.Float64()*500)
	}

	p := &model.Player{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String(),
		Name:      name,
		Positions: positions,
		RawStats:  raw,
	}
	// Rookies carry no prior period by definition.
	if archetype != caseRookie {
		p.RawPriorStats = priorSeason(rng, raw)
	}
	return p
}

func generateGoalie(rng *rand.Rand, name string, starter bool) *model.Player {
	starts := 20 + rng.Intn(20)
	if starter {
		starts = 45 + rng.Intn(18)
	}
	decisions := starts - rng.Intn(5)
	wins := float64(decisions) * (0.35 + rng.Float64()*0.3)

	raw := map[string]float64{
		pick(rng, "W", "Wins"):                        round1(wins),
		pick(rng, "SV", "Saves"):                      round1(float64(starts) * (22 + rng.Float64()*8)),
		pick(rng, "SV%", "Save Pct"):                  round3(0.890 + rng.Float64()*0.035),
		pick(rng, "GAA", "Goals Against Avg"):         round2(2.2 + rng.Float64()*1.3),
		pick(rng, "SHO", "Shutouts", "SO"):           float64(rng.Intn(7)),
	}

	p := &model.Player{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String(),
		Name:      name,
		Positions: []model.Position{model.Goalie},
		RawStats:  raw,
		Starts:    starts,
		Decisions: decisions,
	}
	p.RawPriorStats = priorSeason(rng, raw)
	return p
}

// priorSeason derives last season's line as a noisy echo of the current
// one. Labels are walked in sorted order so rng consumption stays
// reproducible across runs.
func priorSeason(rng *rand.Rand, current map[string]float64) map[string]float64 {
	labels := make([]string, 0, len(current))
	for label := range current {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	prior := make(map[string]float64, len(current))
	for _, label := range labels {
		prior[label] = round1(current[label] * (0.75 + rng.Float64()*0.4))
	}
	return prior
}

// assignKeepers puts a handful of players on keeper contracts: the top
// scorer on a fresh deal, one mid-roster player expiring, one depth player
// in the middle year.
func assignKeepers(rng *rand.Rand, team *model.Team) {
	if len(team.Roster) < 6 {
		return
	}
	team.Roster[0].Keeper = &model.KeeperState{
		IsKeeper:      true,
		OriginalRound: 2 + rng.Intn(3),
		YearIndex:     0,
	}
	team.Roster[4].Keeper = &model.KeeperState{
		IsKeeper:      true,
		OriginalRound: 5 + rng.Intn(4),
		YearIndex:     1,
	}
	team.Roster[7].Keeper = &model.KeeperState{
		IsKeeper:      true,
		OriginalRound: 9 + rng.Intn(5),
		YearIndex:     2,
	}
}

// ownedRounds drops a couple of rounds per team to simulate prior trades.
func ownedRounds(rng *rand.Rand, teamIndex int) []int {
	tradedA := 2 + rng.Intn(draftRounds-2)
	tradedB := 2 + rng.Intn(draftRounds-2)
	rounds := make([]int, 0, draftRounds)
	for r := 1; r <= draftRounds; r++ {
		if teamIndex%2 == 0 && (r == tradedA || r == tradedB) {
			continue
		}
		rounds = append(rounds, r)
	}
	return rounds
}

func pick(rng *rand.Rand, variants ...string) string {
	return variants[rng.Intn(len(variants))]
}

func hasPosition(positions []model.Position, pos model.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func round1(v float64) float64 { return float64(int(v*10)) / 10 }
func round2(v float64) float64 { return float64(int(v*100)) / 100 }
func round3(v float64) float64 { return float64(int(v*1000)) / 1000 }

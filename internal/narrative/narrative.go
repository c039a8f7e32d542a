// Package narrative cross-checks free-form roster commentary against a
// computed team profile. Write-ups routinely claim "we have five centers"
// when two of those centers are dual-eligible wings; the checker extracts
// numeric position claims and compares them with the fractional depth chart.
package narrative

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// tolerance allows a claim to round up a fractional count before it is
// flagged, e.g. "three centers" against a computed 2.5.
const tolerance = 0.5

// Claim is one extracted numeric position statement and its verdict.
type Claim struct {
	Text     string         `json:"text"`
	Position model.Position `json:"position"`
	Claimed  float64        `json:"claimed"`
	Actual   float64        `json:"actual"`
	// Supported is true when the fractional depth backs the claim.
	Supported bool `json:"supported"`
}

var positionWords = map[string]model.Position{
	"center": model.Center, "centers": model.Center, "centre": model.Center, "centres": model.Center,
	"left wing": model.LeftWing, "left wings": model.LeftWing, "left winger": model.LeftWing, "left wingers": model.LeftWing,
	"right wing": model.RightWing, "right wings": model.RightWing, "right winger": model.RightWing, "right wingers": model.RightWing,
	"defenseman": model.Defense, "defensemen": model.Defense, "defender": model.Defense, "defenders": model.Defense,
	"goalie": model.Goalie, "goalies": model.Goalie, "goaltender": model.Goalie, "goaltenders": model.Goalie, "netminder": model.Goalie, "netminders": model.Goalie,
}

var numberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// claimPattern matches "<number> <position phrase>", with the number either
// a digit run or a spelled-out word.
var claimPattern = regexp.MustCompile(
	`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+` +
		`((?:left|right)\s+wing(?:er)?s?|centers?|centres?|defensem[ae]n|defenders?|goalies?|goaltenders?|netminders?)\b`)

// Check extracts every numeric position claim in text and verifies it
// against the profile's fractional position counts. Unmatched text is
// ignored; only explicit claims produce output.
func Check(text string, profile *model.TeamProfile) []Claim {
	if profile == nil || len(profile.PositionCount) == 0 {
		return nil
	}

	matches := claimPattern.FindAllStringSubmatch(text, -1)
	claims := make([]Claim, 0, len(matches))
	for _, m := range matches {
		claimed, ok := parseCount(m[1])
		if !ok {
			continue
		}
		pos, ok := positionWords[normalizePhrase(m[2])]
		if !ok {
			continue
		}
		actual := profile.PositionCount[pos]
		claims = append(claims, Claim{
			Text:      m[0],
			Position:  pos,
			Claimed:   claimed,
			Actual:    actual,
			Supported: claimed <= actual+tolerance,
		})
	}
	return claims
}

func parseCount(s string) (float64, bool) {
	s = strings.ToLower(s)
	if v, ok := numberWords[s]; ok {
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return v, true
}

func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

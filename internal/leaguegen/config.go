package leaguegen

import (
	"time"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// Config holds configuration for the league exercise tool.
type Config struct {
	BaseURL    string        // Base URL of the service
	Teams      int           // Number of franchises to generate
	Seed       int64         // RNG seed; identical seeds produce identical leagues
	Target     string        // Team to analyze; empty means every team
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for the generated league
	LogFile    string        // Log file for tool output
	Verbose    bool          // Enable verbose logging
}

// analyzeRequest mirrors the POST /analyze body.
type analyzeRequest struct {
	Target string                `json:"target"`
	League *model.LeagueSnapshot `json:"league"`
}

// Stats holds run statistics.
type Stats struct {
	TeamsGenerated   int
	PlayersGenerated int
	AnalysesRun      int
	AnalysesFailed   int
	SuggestionsSeen  int
	EmptyResults     int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

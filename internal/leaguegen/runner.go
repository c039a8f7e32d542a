package leaguegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/logger"
)

// File permission constant.
const outputFilePermission = 0600

// Run executes the complete league exercise: generate a deterministic
// league, analyze every requested team twice, verify the responses, and
// save the generated league for replay.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting league exercise",
		logger.String("baseURL", config.BaseURL),
		logger.Int("teams", config.Teams),
		logger.Any("seed", config.Seed),
		logger.String("target", config.Target),
		logger.String("timeout", config.Timeout.String()),
	)

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	league, err := Generate(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("league generation failed: %w", err)
	}

	targets := analysisTargets(config, league)
	client := newHTTPClient(config.Timeout)

	for _, target := range targets {
		first, err := runAnalysis(ctx, config, client, league, target)
		if err != nil {
			stats.AnalysesFailed++
			log.Printf("analysis for %s failed: %v", target, err)
			continue
		}
		stats.AnalysesRun++
		stats.SuggestionsSeen += len(first.Suggestions)
		if len(first.Suggestions) == 0 {
			stats.EmptyResults++
		}

		// Same snapshot, same target: the second run must reproduce the
		// first exactly.
		second, err := runAnalysis(ctx, config, client, league, target)
		if err != nil {
			stats.AnalysesFailed++
			log.Printf("repeat analysis for %s failed: %v", target, err)
			continue
		}
		stats.AnalysesRun++

		profile, err := fetchProfile(ctx, config, client, target)
		if err != nil {
			log.Printf("profile fetch for %s failed: %v", target, err)
		}

		if err := verifyAnalysis(target, first, second, profile, config.Verbose); err != nil {
			return fmt.Errorf("verification for %s failed: %w", target, err)
		}
	}

	if err := saveLeagueToFile(ctx, config, league); err != nil {
		logger.Get().Warn(ctx, "failed to save league to file", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)
	return nil
}

func analysisTargets(config *Config, league *model.LeagueSnapshot) []string {
	if config.Target != "" {
		return []string{config.Target}
	}
	targets := make([]string, 0, len(league.Teams))
	for _, team := range league.Teams {
		targets = append(targets, team.Name)
	}
	return targets
}

// saveLeagueToFile writes the generated league so a failing run can be
// replayed against a local service.
func saveLeagueToFile(ctx context.Context, config *Config, league *model.LeagueSnapshot) error {
	outputFile := config.OutputFile
	if outputFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputFile = "generated_league_" + timestamp + ".json"
	}

	data, err := json.MarshalIndent(league, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal league: %w", err)
	}
	if err := os.WriteFile(outputFile, data, outputFilePermission); err != nil {
		return fmt.Errorf("failed to write league file: %w", err)
	}

	logger.Get().Info(ctx, "saved league", logger.String("file", outputFile))
	return nil
}

func displayFinalStats(stats *Stats) {
	log.Printf(`league exercise complete:
   Teams generated:   %d
   Players generated: %d
   Analyses run:      %d
   Analyses failed:   %d
   Suggestions seen:  %d
   Empty results:     %d
   Duration:          %s
`, stats.TeamsGenerated, stats.PlayersGenerated, stats.AnalysesRun,
		stats.AnalysesFailed, stats.SuggestionsSeen, stats.EmptyResults,
		stats.Duration.Round(time.Millisecond))
}

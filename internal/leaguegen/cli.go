package leaguegen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/benchboss/tradewinds/pkg/logger"
)

// File permission constant.
const logFilePermission = 0600

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "league_exercise_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the league exercise tool.
func ShowHelp() {
	os.Stdout.WriteString(`Tradewinds League Exercise Tool
===============================

Generates a deterministic fantasy league, runs trade analyses against a
live service, and verifies the responses.

Usage:
  go run cmd/leaguegen/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9090")
  -teams int
        Number of franchises to generate (default 8, max 12)
  -seed int
        RNG seed; identical seeds produce identical leagues (default 1)
  -target string
        Analyze only this team (default: every team)
  -timeout duration
        HTTP request timeout (default 60s)
  -output string
        Output file for the generated league (default: generated_league_TIMESTAMP.json)
  -log string
        Log file for tool output (default: league_exercise_TIMESTAMP.log)
  -verbose
        Print every suggestion as it is verified
  -help
        Show help

Examples:
  # Exercise every team in a fresh 8-team league
  go run cmd/leaguegen/main.go

  # Replay-friendly 10-team league, one target
  go run cmd/leaguegen/main.go -teams 10 -seed 42 -target "Harbor Hawks"
`)
}

package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/benchboss/tradewinds/internal/leaguegen"
)

// Default configuration constants.
const (
	defaultTeams      = 8
	defaultSeed       = 1
	defaultTimeout    = 60 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9090", "Base URL of the service")
		teams      = flag.Int("teams", defaultTeams, "Number of franchises to generate")
		seed       = flag.Int64("seed", defaultSeed, "RNG seed; identical seeds produce identical leagues")
		target     = flag.String("target", "", "Analyze only this team (default: every team)")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output file for the generated league")
		logFile    = flag.String("log", "", "Log file for tool output")
		verbose    = flag.Bool("verbose", false, "Print every suggestion as it is verified")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		leaguegen.ShowHelp()
		return
	}

	if err := leaguegen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &leaguegen.Config{
		BaseURL:    *baseURL,
		Teams:      *teams,
		Seed:       *seed,
		Target:     *target,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := leaguegen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("League exercise failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

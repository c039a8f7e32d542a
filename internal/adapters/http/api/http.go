// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/internal/narrative"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze runs the full valuation and trade pipeline for a target team.
	Analyze(ctx context.Context, snapshot *model.LeagueSnapshot, target string) (*model.AnalysisResult, error)

	// Read operations expose stored analysis state.
	Suggestions(ctx context.Context, team string) (*model.AnalysisResult, error)
	Profile(ctx context.Context, team string) (*model.TeamProfile, error)

	// CheckNarrative verifies a write-up's position claims for a team.
	CheckNarrative(ctx context.Context, team, text string) ([]narrative.Claim, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	analyzeHandler     *AnalyzeHandler
	suggestionsHandler *SuggestionsHandler
	profileHandler     *ProfileHandler
	narrativeHandler   *NarrativeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		analyzeHandler:     NewAnalyzeHandler(deps),
		suggestionsHandler: NewSuggestionsHandler(deps),
		profileHandler:     NewProfileHandler(deps),
		narrativeHandler:   NewNarrativeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
	mux.HandleFunc("/suggestions/", MetricsMiddleware(s.suggestionsHandler.HandleGetSuggestions, "suggestions"))
	mux.HandleFunc("/profile/", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profile"))
	mux.HandleFunc("/narrative/check", MetricsMiddleware(s.narrativeHandler.HandleCheck, "narrative_check"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

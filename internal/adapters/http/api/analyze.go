// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/logger"
)

// AnalyzeHandler handles analysis requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// analyzeRequest is the POST /analyze body: a full league snapshot plus
// the team to generate suggestions for.
type analyzeRequest struct {
	Target string                `json:"target"`
	League *model.LeagueSnapshot `json:"league"`
}

func (a analyzeRequest) validate() error {
	switch {
	case strings.TrimSpace(a.Target) == "":
		return errors.New("missing target")
	case a.League == nil || len(a.League.Teams) == 0:
		return errors.New("missing league teams")
	}
	for _, team := range a.League.Teams {
		if strings.TrimSpace(team.Name) == "" {
			return errors.New("league contains a team with no name")
		}
	}
	return nil
}

// HandleAnalyze handles POST /analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.Analyze(r.Context(), req.League, req.Target)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	// The request id lives in the log only; the response body stays a pure
	// function of the snapshot.
	logger.Get().Info(r.Context(), "analysis served",
		logger.String("request_id", uuid.NewString()),
		logger.String("target", req.Target),
		logger.Int("suggestions", len(result.Suggestions)),
	)
	writeJSON(w, http.StatusOK, result)
}

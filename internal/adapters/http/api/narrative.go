// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/benchboss/tradewinds/internal/adapters/repository"
	"github.com/benchboss/tradewinds/internal/narrative"
)

// NarrativeHandler handles narrative consistency checks.
type NarrativeHandler struct {
	deps Dependencies
}

// NewNarrativeHandler creates a new narrative handler.
func NewNarrativeHandler(deps Dependencies) *NarrativeHandler {
	return &NarrativeHandler{deps: deps}
}

// narrativeRequest is the POST /narrative/check body.
type narrativeRequest struct {
	Team string `json:"team"`
	Text string `json:"text"`
}

func (n narrativeRequest) validate() error {
	switch {
	case strings.TrimSpace(n.Team) == "":
		return errors.New("missing team")
	case strings.TrimSpace(n.Text) == "":
		return errors.New("missing text")
	}
	return nil
}

// narrativeResponse lists every extracted claim with its verdict.
type narrativeResponse struct {
	Team   string            `json:"team"`
	Claims []narrative.Claim `json:"claims"`
}

// HandleCheck handles POST /narrative/check requests.
func (h *NarrativeHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	const op = "api.narrative_check"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req narrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	claims, err := h.deps.CheckNarrative(r.Context(), req.Team, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if claims == nil {
		claims = []narrative.Claim{}
	}
	writeJSON(w, http.StatusOK, narrativeResponse{Team: req.Team, Claims: claims})
}

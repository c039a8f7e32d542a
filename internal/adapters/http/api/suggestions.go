// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/benchboss/tradewinds/internal/adapters/repository"
)

// SuggestionsHandler handles stored-suggestion reads.
type SuggestionsHandler struct {
	deps Dependencies
}

// NewSuggestionsHandler creates a new suggestions handler.
func NewSuggestionsHandler(deps Dependencies) *SuggestionsHandler {
	return &SuggestionsHandler{deps: deps}
}

// HandleGetSuggestions handles GET /suggestions/{team} requests.
func (h *SuggestionsHandler) HandleGetSuggestions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_suggestions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	team := strings.TrimPrefix(r.URL.Path, "/suggestions/")
	if team == "" || strings.Contains(team, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	result, err := h.deps.Suggestions(r.Context(), team)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

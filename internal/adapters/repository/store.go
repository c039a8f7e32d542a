// Package repository defines the analysis store interface and errors.
// The store is the explicit boundary cache for computed results; the
// engine core itself never persists anything.
package repository

import (
	"context"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// Store provides read/write access to the latest analysis state per team.
type Store interface {
	// PutAnalysis replaces the stored analysis for its target team.
	PutAnalysis(ctx context.Context, result *model.AnalysisResult) error

	// Analysis returns the latest analysis for a team.
	// Returns ErrNotFound if no analysis has been run for it.
	Analysis(ctx context.Context, team string) (*model.AnalysisResult, error)

	// PutProfile replaces the stored profile for its team.
	PutProfile(ctx context.Context, profile *model.TeamProfile) error

	// Profile returns the latest profile built for a team.
	// Returns ErrNotFound if the team is unknown.
	Profile(ctx context.Context, team string) (*model.TeamProfile, error)

	// Count returns the number of teams with a stored profile.
	Count(ctx context.Context) int
}

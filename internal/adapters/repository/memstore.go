package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/benchboss/tradewinds/internal/domain/model"
	"github.com/benchboss/tradewinds/pkg/metrics"
)

// MemStore implements Store with RWMutex-guarded maps. Analysis output is
// a handful of records per team; nothing here needs an ordered index.
type MemStore struct {
	mu       sync.RWMutex
	analyses map[string]*model.AnalysisResult
	profiles map[string]*model.TeamProfile
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		analyses: make(map[string]*model.AnalysisResult),
		profiles: make(map[string]*model.TeamProfile),
	}
}

// PutAnalysis replaces the stored analysis for its target team.
func (s *MemStore) PutAnalysis(_ context.Context, result *model.AnalysisResult) error {
	if result == nil || result.Target == "" {
		return fmt.Errorf("put analysis: %w", ErrInvalidRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[result.Target] = result
	return nil
}

// Analysis returns the latest analysis for a team.
func (s *MemStore) Analysis(_ context.Context, team string) (*model.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.analyses[team]
	if !ok {
		return nil, fmt.Errorf("analysis for %s: %w", team, ErrNotFound)
	}
	return result, nil
}

// PutProfile replaces the stored profile for its team.
func (s *MemStore) PutProfile(_ context.Context, profile *model.TeamProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	s.mu.Lock()
	s.profiles[profile.Team] = profile
	n := len(s.profiles)
	s.mu.Unlock()
	metrics.UpdateProfileCount(n)
	return nil
}

// Profile returns the latest profile built for a team.
func (s *MemStore) Profile(_ context.Context, team string) (*model.TeamProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[team]
	if !ok {
		return nil, fmt.Errorf("profile for %s: %w", team, ErrNotFound)
	}
	return profile, nil
}

// Count returns the number of teams with a stored profile.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

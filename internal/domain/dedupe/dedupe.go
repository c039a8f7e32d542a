// Package dedupe tracks trade signatures so two generator passes never
// emit the same trade twice.
package dedupe

import (
	"sync"
)

// Set records seen trade signatures. The ranking reduction is
// single-threaded, but the set stays safe for concurrent use so callers
// running partner searches in parallel can share one if they choose.
type Set struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewSet creates an empty signature set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// SeenAndRecord atomically checks whether sig was seen and records it if
// not. Returns true if sig was already present.
func (s *Set) SeenAndRecord(sig string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[sig]; ok {
		return true
	}
	s.seen[sig] = struct{}{}
	return false
}

// Size returns the number of recorded signatures.
func (s *Set) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

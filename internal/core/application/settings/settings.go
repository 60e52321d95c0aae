// Package settings holds mutable runtime settings. They live in process
// memory only and reset to their configured defaults on restart.
package settings

import "sync"

// Settings is the runtime settings store, safe for concurrent use by the
// HTTP handlers, the poll job and the processing sweep.
type Settings struct {
	mu             sync.RWMutex
	autoProcessing bool
}

// New creates a Settings store with the given initial auto-processing
// state.
func New(autoProcessing bool) *Settings {
	return &Settings{autoProcessing: autoProcessing}
}

// AutoProcessing reports whether ready orders are processed automatically
// after ingestion and approval.
func (s *Settings) AutoProcessing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoProcessing
}

// SetAutoProcessing flips the auto-processing flag and reports whether
// the value changed, so callers can trigger a sweep only on a real
// off-to-on transition.
func (s *Settings) SetAutoProcessing(enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.autoProcessing != enabled
	s.autoProcessing = enabled
	return changed
}

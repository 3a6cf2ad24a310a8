package format

import (
	"strings"
	"sync"
)

// suppressedFragments are the substrings that identify dependency warning
// noise. The match is a plain substring test, not a structured log filter;
// false positives on legitimate output are an accepted limitation.
var suppressedFragments = []string{
	"Warning:",
	"DeprecationWarning",
	"FutureWarning",
	"pandas",
	"inplace method",
	"intermediate object",
	"is deprecated and will be removed in a future version",
	"Downcasting object dtype arrays",
}

// Suppressor drops output chunks that look like dependency warning noise.
// The zero value is disabled; use NewSuppressor for the configured default.
type Suppressor struct {
	mux       sync.RWMutex
	enabled   bool
	fragments []string
}

// NewSuppressor creates a suppressor with the fixed fragment list.
func NewSuppressor(enabled bool) *Suppressor {
	return &Suppressor{enabled: enabled, fragments: suppressedFragments}
}

// Enabled reports whether suppression is active.
func (s *Suppressor) Enabled() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.enabled
}

// SetEnabled toggles suppression.
func (s *Suppressor) SetEnabled(enabled bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.enabled = enabled
}

// Keep reports whether the chunk may reach the transcript. When suppression
// is enabled a chunk containing any known fragment contributes zero bytes.
func (s *Suppressor) Keep(chunk string) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if !s.enabled {
		return true
	}
	for _, fragment := range s.fragments {
		if strings.Contains(chunk, fragment) {
			return false
		}
	}
	return true
}

// Filter returns only the chunks that pass Keep.
func (s *Suppressor) Filter(chunks []string) []string {
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if s.Keep(chunk) {
			out = append(out, chunk)
		}
	}
	return out
}

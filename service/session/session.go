// Package session maintains a pool of named host-process terminal sessions.
// Each session runs at most one command at a time and reports completion
// through the event service rather than a return value.
package session

import (
	"sync"
	"time"
)

// State of a pooled session.
type State string

const (
	StateIdle   State = "idle"
	StateBusy   State = "busy"
	StateClosed State = "closed"
)

// Session is a single named host-process terminal.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
	mux       sync.Mutex
	state     State
	runner    Runner
}

// State returns the current session state.
func (s *Session) State() State {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state
}

// tryAcquire transitions idle to busy; it fails while a command is
// in flight or after close.
func (s *Session) tryAcquire() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.state != StateIdle {
		return false
	}
	s.state = StateBusy
	return true
}

// release returns a busy session to idle. A session closed while its
// command was still running stays closed.
func (s *Session) release() {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.state == StateBusy {
		s.state = StateIdle
	}
}

func (s *Session) markClosed() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state = StateClosed
}

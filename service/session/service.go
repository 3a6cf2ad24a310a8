package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/codelab/tutor/internal/clock"
	"github.com/codelab/tutor/internal/idgen"
	"github.com/codelab/tutor/service/event"
)

// DefaultName is the session commands run in when no name is given.
const DefaultName = "main"

// Service manages the pool of named terminal sessions.
type Service struct {
	mux      sync.Mutex
	sessions map[string]*Session
	factory  RunnerFactory
	host     *Host
	events   *event.Service
}

// New creates a session pool publishing lifecycle signals to events.
func New(events *event.Service, opts ...Option) *Service {
	ret := &Service{
		sessions: make(map[string]*Session),
		events:   events,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.factory == nil {
		ret.factory = NewGoshRunner
	}
	if ret.host == nil {
		ret.host = &Host{URL: "localhost"}
	}
	return ret
}

// Ensure returns the named session, creating it on first use. An empty
// name selects the default session.
func (s *Service) Ensure(ctx context.Context, name string) (*Session, error) {
	if name == "" {
		name = DefaultName
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if session, ok := s.sessions[name]; ok {
		return session, nil
	}
	runner, err := s.factory(ctx, s.host)
	if err != nil {
		return nil, fmt.Errorf("failed to create session %s: %w", name, err)
	}
	session := &Session{
		ID:        idgen.Short(),
		Name:      name,
		CreatedAt: clock.Now(),
		state:     StateIdle,
		runner:    runner,
	}
	s.sessions[name] = session
	return session, nil
}

// Send hands a command to the named session. It returns false when the
// session is still running a previous command; the command is dropped,
// never queued. Output arrives later as a CommandEnded event.
func (s *Service) Send(ctx context.Context, name, command string) (bool, error) {
	session, err := s.Ensure(ctx, name)
	if err != nil {
		return false, err
	}
	if !session.tryAcquire() {
		return false, nil
	}
	go s.runCommand(session, command)
	return true, nil
}

// State reports the state of the named session, or closed when the
// session does not exist.
func (s *Service) State(name string) State {
	if name == "" {
		name = DefaultName
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if session, ok := s.sessions[name]; ok {
		return session.State()
	}
	return StateClosed
}

// CurrentID returns the identity of the live session under name, or the
// empty string when no session exists.
func (s *Service) CurrentID(name string) string {
	if name == "" {
		name = DefaultName
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if session, ok := s.sessions[name]; ok {
		return session.ID
	}
	return ""
}

// Close removes the named session from the pool, even while a command
// is in flight. The late completion signal of an interrupted command
// still carries the closed session's identity, so listeners can tell it
// does not belong to any live session.
func (s *Service) Close(ctx context.Context, name string) error {
	if name == "" {
		name = DefaultName
	}
	s.mux.Lock()
	session, ok := s.sessions[name]
	if ok {
		delete(s.sessions, name)
	}
	s.mux.Unlock()
	if !ok {
		return nil
	}
	session.markClosed()
	err := session.runner.Close()
	s.publishClosed(ctx, name)
	return err
}

// Shutdown closes every pooled session.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mux.Lock()
	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	s.mux.Unlock()
	var errs []string
	for _, name := range names {
		if err := s.Close(ctx, name); err != nil {
			errs = append(errs, fmt.Sprintf("failed to close session %s: %v", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing sessions: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (s *Service) runCommand(session *Session, command string) {
	ctx := context.Background()
	output, status, err := session.runner.Run(ctx, command)
	if err != nil && output == "" {
		output = err.Error()
	}
	session.release()
	s.publishEnded(ctx, &CommandEnded{
		SessionID:   session.ID,
		SessionName: session.Name,
		Command:     command,
		Output:      output,
		Status:      status,
	})
}

func (s *Service) publishEnded(ctx context.Context, ended *CommandEnded) {
	publisher, err := event.PublisherOf[CommandEnded](s.events)
	if err == nil {
		err = publisher.Publish(ctx, event.NewEvent(&event.Context{
			SessionName: ended.SessionName,
			EventType:   EventCommandEnded,
			Service:     Name,
		}, *ended))
	}
	if err != nil {
		log.Printf("failed to publish command ended for session %s: %v", ended.SessionName, err)
	}
}

func (s *Service) publishClosed(ctx context.Context, name string) {
	publisher, err := event.PublisherOf[Closed](s.events)
	if err == nil {
		err = publisher.Publish(ctx, event.NewEvent(&event.Context{
			SessionName: name,
			EventType:   EventClosed,
			Service:     Name,
		}, Closed{SessionName: name}))
	}
	if err != nil {
		log.Printf("failed to publish close for session %s: %v", name, err)
	}
}

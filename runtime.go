package tutor

import (
	"context"

	"github.com/codelab/tutor/model"
	"github.com/codelab/tutor/service/dao/curriculum"
	"github.com/codelab/tutor/service/dispatcher"
	"github.com/codelab/tutor/service/event"
	"github.com/codelab/tutor/service/interpreter"
	"github.com/codelab/tutor/service/preference"
	"github.com/codelab/tutor/service/session"
)

// Runtime is the running engine: curriculum loading, action execution
// and preference handling over the services wired by tutor.New.
type Runtime struct {
	curriculumDAO *curriculum.Service
	dispatcher    *dispatcher.Service
	sessions      *session.Service
	interpreter   *interpreter.Service
	preferences   *preference.Service
	eventService  *event.Service
}

// LoadCurriculum loads the curriculum at location. A malformed or
// missing document degrades to the empty curriculum.
func (r *Runtime) LoadCurriculum(ctx context.Context, location string) *model.Curriculum {
	return r.curriculumDAO.Load(ctx, location)
}

// DecodeYAMLCurriculum parses a curriculum from its encoded form.
func (r *Runtime) DecodeYAMLCurriculum(data []byte) (*model.Curriculum, error) {
	return r.curriculumDAO.DecodeYAML(data)
}

// Execute routes one lesson action through the dispatcher.
func (r *Runtime) Execute(ctx context.Context, action *model.Action) error {
	return r.dispatcher.Execute(ctx, action)
}

// Preferences returns the stored learner preferences.
func (r *Runtime) Preferences(ctx context.Context) *preference.Preferences {
	return r.preferences.Load(ctx)
}

// SavePreferences persists the preferences and applies the warning
// suppression setting to the running dispatcher.
func (r *Runtime) SavePreferences(ctx context.Context, preferences *preference.Preferences) error {
	if err := r.preferences.Save(ctx, preferences); err != nil {
		return err
	}
	r.dispatcher.Suppressor().SetEnabled(preferences.SuppressWarnings)
	return nil
}

// SessionState reports the state of a pooled terminal session.
func (r *Runtime) SessionState(name string) session.State {
	return r.sessions.State(name)
}

// CloseSession removes a pooled terminal session.
func (r *Runtime) CloseSession(ctx context.Context, name string) error {
	return r.sessions.Close(ctx, name)
}

// Shutdown closes all pooled sessions and stops the event listeners.
func (r *Runtime) Shutdown(ctx context.Context) error {
	err := r.sessions.Shutdown(ctx)
	r.eventService.Shutdown()
	return err
}

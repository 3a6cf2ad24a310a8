package tutor

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/x"

	"github.com/codelab/tutor/extension"
	"github.com/codelab/tutor/model/types"
	"github.com/codelab/tutor/service/dao/curriculum"
	"github.com/codelab/tutor/service/dispatcher"
	"github.com/codelab/tutor/service/event"
	"github.com/codelab/tutor/service/interpreter"
	"github.com/codelab/tutor/service/meta"
	"github.com/codelab/tutor/service/preference"
	"github.com/codelab/tutor/service/session"
)

type Service struct {
	runtime           *Runtime
	config            *Config
	metaService       *meta.Service
	eventService      *event.Service
	backends          *extension.Backends
	extensionTypes    []*x.Type
	extensionServices []types.Service
	metaBaseURL       string
	metaFsOptions     []storage.Option
	preferenceURL     string
	runnerFactory     session.RunnerFactory
	sessionHost       *session.Host
	dispatcherOptions []dispatcher.Option
	initErr           error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	if s.initErr = s.config.Validate(); s.initErr != nil {
		return
	}

	s.backends = extension.NewBackends(s.extensionTypes...)

	sessionOptions := []session.Option{}
	if s.runnerFactory != nil {
		sessionOptions = append(sessionOptions, session.WithRunnerFactory(s.runnerFactory))
	}
	if s.sessionHost != nil {
		sessionOptions = append(sessionOptions, session.WithHost(s.sessionHost))
	}
	s.runtime.sessions = session.New(s.eventService, sessionOptions...)
	s.runtime.interpreter = interpreter.New()

	s.backends.Register(s.runtime.interpreter)
	s.backends.Register(s.runtime.sessions)
	for _, service := range s.extensionServices {
		s.backends.Register(service)
	}

	s.runtime.curriculumDAO = curriculum.New(s.metaService)
	s.runtime.preferences = preference.New(afs.New(), s.preferenceURL)
	s.runtime.eventService = s.eventService

	dispatcherOptions := append([]dispatcher.Option{
		dispatcher.WithSessionPool(s.config.Session.Enabled),
		dispatcher.WithDefaultSession(s.config.Session.DefaultName),
		dispatcher.WithNotifyBusy(s.config.Session.NotifyBusy),
		dispatcher.WithSuppressDirectives(s.config.Interpreter.SuppressDirectives),
		dispatcher.WithSuppressWarnings(s.config.Format.SuppressWarnings),
	}, s.dispatcherOptions...)
	s.runtime.dispatcher, s.initErr = dispatcher.New(s.backends, s.eventService, s.runtime.sessions, s.metaService, dispatcherOptions...)
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.eventService == nil {
		s.eventService = event.New()
	}
}

// RegisterExtensionTypes adds Go types to the shared backend registry.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.backends.Types().Register(types[i])
	}
}

// RegisterExtensionServices registers additional execution backends.
func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.backends.Register(services[i])
	}
}

// Runtime returns the engine runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Err reports a failed initialisation; the service is unusable when set.
func (s *Service) Err() error {
	return s.initErr
}

// New creates the engine service.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}

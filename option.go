package tutor

import (
	"github.com/viant/afs/storage"
	"github.com/viant/x"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/codelab/tutor/model/types"
	"github.com/codelab/tutor/service/dispatcher"
	"github.com/codelab/tutor/service/event"
	"github.com/codelab/tutor/service/meta"
	"github.com/codelab/tutor/service/session"
	"github.com/codelab/tutor/tracing"
)

// Option customises the engine service.
type Option func(s *Service)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithMetaService sets the asset service.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the asset base URL.
func WithMetaBaseURL(url string) Option {
	return func(s *Service) {
		s.metaBaseURL = url
	}
}

// WithMetaFsOptions sets asset file system options.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithEventService sets the lifecycle event service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithExtensionTypes sets the extension types.
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = types
	}
}

// WithExtensionServices registers additional execution backends.
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = services
	}
}

// WithPreferenceURL sets where learner preferences are persisted.
func WithPreferenceURL(url string) Option {
	return func(s *Service) {
		s.preferenceURL = url
	}
}

// WithRunnerFactory overrides how terminal session runners are created.
func WithRunnerFactory(factory session.RunnerFactory) Option {
	return func(s *Service) {
		s.runnerFactory = factory
	}
}

// WithSessionHost sets the host terminal sessions run against.
func WithSessionHost(host *session.Host) Option {
	return func(s *Service) {
		s.sessionHost = host
	}
}

// WithBrowserOpener sets the URL side-channel.
func WithBrowserOpener(openURL dispatcher.SideChannel) Option {
	return func(s *Service) {
		s.dispatcherOptions = append(s.dispatcherOptions, dispatcher.WithBrowserOpener(openURL))
	}
}

// WithFileViewer sets the file viewer side-channel.
func WithFileViewer(loadFile dispatcher.SideChannel) Option {
	return func(s *Service) {
		s.dispatcherOptions = append(s.dispatcherOptions, dispatcher.WithFileViewer(loadFile))
	}
}

// WithNotifier sets the notification side-channel.
func WithNotifier(notify dispatcher.SideChannel) Option {
	return func(s *Service) {
		s.dispatcherOptions = append(s.dispatcherOptions, dispatcher.WithNotifier(notify))
	}
}

// WithTranscriptAppender sets the append-only transcript callback.
func WithTranscriptAppender(appender dispatcher.SideChannel) Option {
	return func(s *Service) {
		s.dispatcherOptions = append(s.dispatcherOptions, dispatcher.WithTranscriptAppender(appender))
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If
// outputFile is empty the stdout exporter is used; otherwise traces are
// written to the supplied file path.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter, for example OTLP, Jaeger or Zipkin.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}

// Package dispatcher routes lesson actions to their execution backends
// and side-channels, and assembles the formatted transcript for every
// command run.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/codelab/tutor/extension"
	"github.com/codelab/tutor/model"
	"github.com/codelab/tutor/model/types"
	"github.com/codelab/tutor/service/event"
	"github.com/codelab/tutor/service/format"
	"github.com/codelab/tutor/service/interpreter"
	"github.com/codelab/tutor/service/meta"
	"github.com/codelab/tutor/service/session"
	"github.com/codelab/tutor/tracing"
	"github.com/viant/structology/conv"
)

// pythonPrefix is the reserved command prefix routed to the sandboxed
// interpreter. The match is case-sensitive, one trailing space.
const pythonPrefix = "python "

// CannotExecuteMessage is the fixed diagnostic emitted when a command
// has no backend able to run it.
const CannotExecuteMessage = "cannot execute in this environment"

// failureLine is the single generic line rendered for a failed
// sandboxed run; the interpreter diagnostic is never shown verbatim.
const failureLine = "execution failed"

// warningSuppressionDirectives is the prelude prepended to fetched
// sources when directive suppression is on, mirroring lesson scripts
// that silence dependency warnings before any import runs.
var warningSuppressionDirectives = []string{
	"# import warnings",
	"# warnings.filterwarnings(\"ignore\")",
}

// SideChannel is a single-argument fire-and-forget callback.
type SideChannel func(value string)

// Service dispatches actions. Backends are resolved through the shared
// registry; side-channels and transcript output are injected callbacks.
type Service struct {
	backends   *extension.Backends
	events     *event.Service
	sessions   *session.Service
	assets     *meta.Service
	converter  *conv.Converter
	suppressor *format.Suppressor

	sessionEnabled     bool
	defaultSession     string
	notifyBusy         bool
	suppressDirectives bool

	openURL  SideChannel
	loadFile SideChannel
	notify   SideChannel
	appender SideChannel
}

// New creates a dispatcher and subscribes it to session completion
// signals so pooled command output reaches the transcript.
func New(backends *extension.Backends, events *event.Service, sessions *session.Service, assets *meta.Service, opts ...Option) (*Service, error) {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true

	discard := func(string) {}
	ret := &Service{
		backends:           backends,
		events:             events,
		sessions:           sessions,
		assets:             assets,
		converter:          conv.NewConverter(options),
		suppressor:         format.NewSuppressor(true),
		defaultSession:     session.DefaultName,
		suppressDirectives: true,
		openURL:            discard,
		loadFile:           discard,
		notify:             discard,
		appender:           discard,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.events != nil {
		if err := event.SetListenerOf[session.CommandEnded](ret.events, ret.onCommandEnded); err != nil {
			return nil, fmt.Errorf("failed to subscribe to session signals: %w", err)
		}
	}
	return ret, nil
}

// Suppressor exposes the warning suppressor so preference changes can
// toggle it at runtime.
func (s *Service) Suppressor() *format.Suppressor {
	return s.suppressor
}

// Execute routes one action. Lesson-level failures (missing source,
// failed run, busy session) surface in the transcript or the notify
// side-channel; only engine-level defects return an error.
func (s *Service) Execute(ctx context.Context, action *model.Action) (err error) {
	if action == nil {
		return nil
	}
	ctx, span := tracing.StartSpan(ctx, "dispatcher.execute", "INTERNAL")
	span.WithAttributes(map[string]string{
		"action.kind":   string(action.Kind),
		"action.target": action.Target,
	})
	defer func() {
		tracing.EndSpan(span, err)
	}()

	switch action.Kind {
	case model.KindBrowser:
		if action.Target != "" {
			s.openURL(action.Target)
		}
	case model.KindFile:
		if action.Target != "" {
			s.loadFile(action.Target)
		}
	case model.KindTests:
		file, command, tErr := action.TestsTarget()
		if tErr != nil {
			return tErr
		}
		// the file must be in the viewer before its command runs
		s.loadFile(file)
		err = s.runCommand(ctx, action, command)
	case model.KindCommand:
		if strings.TrimSpace(action.Target) == "" {
			return nil
		}
		err = s.runCommand(ctx, action, action.Target)
	default:
		err = &model.MalformedActionError{Kind: string(action.Kind), Target: action.Target, Reason: "unknown kind"}
	}
	return err
}

func (s *Service) runCommand(ctx context.Context, action *model.Action, command string) error {
	if strings.HasPrefix(command, pythonPrefix) {
		return s.runSandboxed(ctx, action, command)
	}
	if !s.sessionEnabled {
		s.notify(CannotExecuteMessage)
		return nil
	}
	return s.sendToSession(ctx, action, command)
}

func (s *Service) runSandboxed(ctx context.Context, action *model.Action, command string) error {
	location := strings.TrimSpace(strings.TrimPrefix(command, pythonPrefix))
	if location == "" {
		return nil
	}
	source, fetchErr := s.assets.Fetch(ctx, location)
	if fetchErr != nil {
		s.render(echo(command) + source + "\n")
		return nil
	}
	if s.suppressDirectives {
		source = strings.Join(warningSuppressionDirectives, "\n") + "\n" + source
	}

	executable, signature, err := s.lookupMethod(interpreter.Name, "run")
	if err != nil {
		return err
	}
	input := reflect.New(signature.Input.Elem()).Interface()
	values := withValues(action)
	values["source"] = source
	if err = s.converter.Convert(values, input); err != nil {
		return fmt.Errorf("failed to convert interpreter input: %w", err)
	}
	output := reflect.New(signature.Output.Elem()).Interface()

	runErr := executable(ctx, input, output)
	var execErr *interpreter.ExecutionError
	if runErr != nil && !errors.As(runErr, &execErr) {
		return runErr
	}
	result, ok := output.(*interpreter.Output)
	if !ok {
		return types.NewInvalidOutputError(output)
	}

	var b strings.Builder
	b.WriteString(echo(command))
	for _, line := range splitLines(result.Stdout()) {
		if !s.suppressor.Keep(line) {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if execErr != nil {
		b.WriteString(failureLine)
		b.WriteString("\n")
	}
	s.render(b.String())
	return nil
}

func (s *Service) sendToSession(ctx context.Context, action *model.Action, command string) error {
	executable, signature, err := s.lookupMethod(session.Name, "send")
	if err != nil {
		return err
	}
	input := reflect.New(signature.Input.Elem()).Interface()
	values := withValues(action)
	values["command"] = command
	if _, ok := values["session"]; !ok {
		values["session"] = s.defaultSession
	}
	if err = s.converter.Convert(values, input); err != nil {
		return fmt.Errorf("failed to convert session input: %w", err)
	}
	output := reflect.New(signature.Output.Elem()).Interface()
	if err = executable(ctx, input, output); err != nil {
		return err
	}
	result, ok := output.(*session.Output)
	if !ok {
		return types.NewInvalidOutputError(output)
	}
	if !result.Accepted && s.notifyBusy {
		s.notify(fmt.Sprintf("session %s is busy, command dropped", result.Session))
	}
	return nil
}

// onCommandEnded renders the transcript for a pooled command once its
// completion signal arrives. The signal carries the identity of the
// session that ran the command; when it no longer matches the live
// session under that name, because the session was closed or closed and
// recreated meanwhile, the signal is discarded.
func (s *Service) onCommandEnded(e *event.Event[session.CommandEnded]) {
	if e == nil {
		return
	}
	data := e.Data
	if s.sessions != nil && s.sessions.CurrentID(data.SessionName) != data.SessionID {
		return
	}
	var b strings.Builder
	b.WriteString(echo(data.Command))
	for _, line := range splitLines(data.Output) {
		if !s.suppressor.Keep(line) {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if data.Status != 0 {
		b.WriteString(fmt.Sprintf("exit status %d\n", data.Status))
	}
	s.render(b.String())
}

func (s *Service) render(raw string) {
	s.appender(format.Transcript(raw))
}

func (s *Service) lookupMethod(service, method string) (types.Executable, *types.Signature, error) {
	backend := s.backends.Lookup(service)
	if backend == nil {
		return nil, nil, fmt.Errorf("backend %v not found", service)
	}
	executable, err := backend.Method(method)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find method %v for backend %v: %w", method, service, err)
	}
	signature := backend.Methods().Lookup(method)
	if signature == nil {
		return nil, nil, fmt.Errorf("missing signature for %v.%v", service, method)
	}
	return executable, signature, nil
}

func withValues(action *model.Action) map[string]interface{} {
	values := map[string]interface{}{}
	for key, value := range action.With {
		values[key] = value
	}
	return values
}

func echo(command string) string {
	return "$ " + command + "\n"
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

package interpreter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Sink receives one chunk of interpreter output.
type Sink func(chunk string)

// ExecutionError carries the interpreter diagnostic for a failed run. The
// diagnostic is free-form backtrace text; callers render a generic failure
// line instead of parsing it.
type ExecutionError struct {
	Diagnostic string
	Err        error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Service owns the single shared interpreter instance. The first caller pays
// the warm-up cost; concurrent callers block on the same ready gate so
// initialisation happens exactly once. Construct it once at process start and
// pass it to the dispatcher explicitly.
type Service struct {
	initOnce sync.Once
	ready    chan struct{}
	initErr  error
	options  *syntax.FileOptions

	// runMu serialises execution against the shared instance; interleaved
	// runs would observe each other's globals.
	runMu sync.Mutex

	sinkMu sync.Mutex
	stdout Sink
	stderr Sink
}

// New creates the interpreter service. The interpreter itself is initialised
// lazily on first Run.
func New() *Service {
	return &Service{ready: make(chan struct{})}
}

// warmUp triggers the one-off initialisation and waits for it. Concurrent
// first callers all await the same gate; none triggers a second warm-up.
func (s *Service) warmUp(ctx context.Context) error {
	go s.initOnce.Do(s.initialise)
	select {
	case <-s.ready:
		return s.initErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) initialise() {
	defer close(s.ready)
	s.options = &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}
	// Prime the instance with a throwaway script so syntax/runtime setup
	// cost is paid here rather than on the first lesson action.
	thread := &starlark.Thread{Name: "warmup"}
	_, s.initErr = starlark.ExecFileOptions(s.options, thread, "warmup.star", "_ = True\n", nil)
}

// swapSinks installs the given sinks and returns the previous pair.
func (s *Service) swapSinks(stdout, stderr Sink) (Sink, Sink) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	prevOut, prevErr := s.stdout, s.stderr
	s.stdout, s.stderr = stdout, stderr
	return prevOut, prevErr
}

func (s *Service) emitStdout(chunk string) {
	s.sinkMu.Lock()
	sink := s.stdout
	s.sinkMu.Unlock()
	if sink != nil {
		sink(chunk)
	}
}

func (s *Service) emitStderr(chunk string) {
	s.sinkMu.Lock()
	sink := s.stderr
	s.sinkMu.Unlock()
	if sink != nil {
		sink(chunk)
	}
}

// Run executes source as a top-level script against the shared interpreter
// and returns the exported globals. Output is delivered incrementally to the
// supplied sinks, which are installed for the duration of this call and
// restored afterwards regardless of outcome. Runs are serialised; a
// concurrent call waits for the in-flight one to finish.
func (s *Service) Run(ctx context.Context, source string, onStdout, onStderr Sink) (starlark.StringDict, error) {
	if err := s.warmUp(ctx); err != nil {
		return nil, err
	}
	s.runMu.Lock()
	defer s.runMu.Unlock()

	predeclared := s.preload(source)

	prevOut, prevErr := s.swapSinks(onStdout, onStderr)
	defer s.swapSinks(prevOut, prevErr)

	thread := &starlark.Thread{
		Name: "lesson",
		Print: func(_ *starlark.Thread, msg string) {
			s.emitStdout(msg + "\n")
		},
	}
	globals, err := starlark.ExecFileOptions(s.options, thread, "lesson.star", source, predeclared)
	if err != nil {
		diagnostic := err.Error()
		if evalErr, ok := err.(*starlark.EvalError); ok {
			diagnostic = evalErr.Backtrace()
		}
		s.emitStderr(diagnostic + "\n")
		return nil, &ExecutionError{Diagnostic: diagnostic, Err: err}
	}
	return globals, nil
}

// preload scans source for dependency imports and resolves each matched name
// against the known module set. A module that fails to load is skipped with
// a log entry; the subsequent execution fails with its own natural error.
func (s *Service) preload(source string) starlark.StringDict {
	predeclared := starlark.StringDict{}
	for _, name := range DetectImports(source) {
		loader, ok := moduleLoaders[name]
		if !ok {
			continue
		}
		module, err := loader()
		if err != nil {
			slog.Warn("dependency pre-load failed", "module", name, "error", err)
			continue
		}
		predeclared[name] = module
	}
	return predeclared
}

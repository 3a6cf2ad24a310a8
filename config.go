package tutor

import "fmt"

// Config is a serialisable representation of the engine configuration.
// The zero-value inherits the package defaults via DefaultConfig.
type Config struct {
	Interpreter InterpreterConfig `json:"interpreter" yaml:"interpreter"`
	Session     SessionConfig     `json:"session" yaml:"session"`
	Format      FormatConfig      `json:"format" yaml:"format"`
}

// InterpreterConfig tunes the sandboxed execution backend.
type InterpreterConfig struct {
	// SuppressDirectives prepends the warning-suppression prelude to every
	// fetched source before it runs.
	SuppressDirectives bool `json:"suppressDirectives" yaml:"suppressDirectives"`
}

// SessionConfig tunes the terminal session pool.
type SessionConfig struct {
	// Enabled routes non-sandboxed commands to the pool; when off those
	// commands produce the fixed cannot-execute diagnostic instead.
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	DefaultName string `json:"defaultName" yaml:"defaultName"`
	// NotifyBusy surfaces busy-session rejections on the notify channel.
	NotifyBusy bool `json:"notifyBusy" yaml:"notifyBusy"`
}

// FormatConfig tunes transcript rendering.
type FormatConfig struct {
	SuppressWarnings bool `json:"suppressWarnings" yaml:"suppressWarnings"`
}

// DefaultConfig returns the configuration used when the caller supplies
// none: sandbox-only execution, main session, warning noise suppressed.
func DefaultConfig() *Config {
	return &Config{
		Interpreter: InterpreterConfig{SuppressDirectives: true},
		Session:     SessionConfig{Enabled: false, DefaultName: "main", NotifyBusy: false},
		Format:      FormatConfig{SuppressWarnings: true},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Session.DefaultName == "" {
		return fmt.Errorf("session.defaultName must not be empty")
	}
	return nil
}

package model

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of action variants.
type Kind string

const (
	// KindCommand runs a command against one of the execution backends.
	KindCommand Kind = "command"
	// KindBrowser opens a URL through the browser side-channel.
	KindBrowser Kind = "browser"
	// KindFile loads a file into the viewer side-channel.
	KindFile Kind = "file"
	// KindTests loads a test file into the viewer and then runs its command.
	KindTests Kind = "tests"
)

// TestsSeparator splits a tests composite target into its file and command part.
const TestsSeparator = "|"

// Action represents one user-triggerable operation declared in a lesson.
// Actions are loaded once from the curriculum document and never mutated;
// the engine only reads them.
type Action struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// With carries optional backend extras (session name, workdir, env)
	// declared next to the action; backends receive it converted to their
	// typed input.
	With map[string]interface{} `json:"with,omitempty" yaml:"with,omitempty"`
}

// MalformedActionError describes a curriculum action entry that failed
// validation. The offending entry is skipped, never fatal.
type MalformedActionError struct {
	Kind   string
	Target string
	Reason string
}

func (e *MalformedActionError) Error() string {
	return fmt.Sprintf("malformed action (kind: %q, target: %q): %s", e.Kind, e.Target, e.Reason)
}

// ParseAction validates a raw action record. Kind must be one of the four
// variants; a tests target must contain exactly one separator with two
// non-empty trimmed parts. Targets of the remaining kinds may be any string
// including empty - an empty target is a legal no-op, not a defect.
func ParseAction(kind, label, target string) (*Action, error) {
	aKind := Kind(kind)
	switch aKind {
	case KindCommand, KindBrowser, KindFile:
	case KindTests:
		if err := validateTestsTarget(kind, target); err != nil {
			return nil, err
		}
	default:
		return nil, &MalformedActionError{Kind: kind, Target: target, Reason: "unknown kind"}
	}
	return &Action{Kind: aKind, Label: label, Target: target}, nil
}

// TestsTarget splits a tests composite target on the first separator and
// returns the trimmed file and command parts.
func (a *Action) TestsTarget() (file, command string, err error) {
	if err := validateTestsTarget(string(a.Kind), a.Target); err != nil {
		return "", "", err
	}
	index := strings.Index(a.Target, TestsSeparator)
	file = strings.TrimSpace(a.Target[:index])
	command = strings.TrimSpace(a.Target[index+1:])
	return file, command, nil
}

func validateTestsTarget(kind, target string) error {
	if strings.Count(target, TestsSeparator) != 1 {
		return &MalformedActionError{Kind: kind, Target: target, Reason: "expected exactly one '|' separator"}
	}
	index := strings.Index(target, TestsSeparator)
	if strings.TrimSpace(target[:index]) == "" || strings.TrimSpace(target[index+1:]) == "" {
		return &MalformedActionError{Kind: kind, Target: target, Reason: "separator parts must be non-empty"}
	}
	return nil
}

package idgen

import "github.com/google/uuid"

// New returns a new globally unique identifier as string. It is implemented
// as a thin wrapper so tests can stub it.

var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }

// Short returns the leading segment of a fresh identifier, used where a
// compact handle is enough (terminal session ids surfaced to the learner).
func Short() string {
	id := New()
	if idx := len("xxxxxxxx"); len(id) > idx {
		return id[:idx]
	}
	return id
}

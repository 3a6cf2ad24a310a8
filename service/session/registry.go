package session

import (
	"context"
	"reflect"
	"strings"

	"github.com/codelab/tutor/model/types"
)

// Name is the backend service name the dispatcher routes terminal
// commands to.
const Name = "session"

// Input represents one command handed to a named session
type Input struct {
	Session string `json:"session,omitempty" description:"target session name, defaults to main"`
	Command string `json:"command" description:"command line to run in the session host process"`
}

// Output reports whether the session accepted the command. The command
// output itself arrives asynchronously as a CommandEnded event.
type Output struct {
	Session  string `json:"session"`
	Accepted bool   `json:"accepted"`
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "send",
			Description: "Hands a command to a named terminal session; a busy session rejects it.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns method by Name
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "send":
		return s.send, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) send(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	name := input.Session
	if name == "" {
		name = DefaultName
	}
	accepted, err := s.Send(ctx, name, input.Command)
	if err != nil {
		return err
	}
	output.Session = name
	output.Accepted = accepted
	return nil
}

package interpreter

import (
	"context"
	"reflect"
	"strings"

	"github.com/codelab/tutor/model/types"
)

// Name is the backend service name the dispatcher routes sandboxed
// executions to.
const Name = "interpreter"

// Output stream channels.
const (
	ChannelStdout = "stdout"
	ChannelStderr = "stderr"
)

// Chunk is one (channel, text) pair of the execution stream.
type Chunk struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// Input represents one sandboxed execution request
type Input struct {
	Source string `json:"source" description:"source text executed as a top-level script"`
}

// Output carries the ordered execution stream of one run
type Output struct {
	Stream []Chunk `json:"stream,omitempty"`
}

// Stdout returns the concatenated stdout chunks.
func (o *Output) Stdout() string {
	var b strings.Builder
	for _, chunk := range o.Stream {
		if chunk.Channel == ChannelStdout {
			b.WriteString(chunk.Text)
		}
	}
	return b.String()
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "run",
			Description: "Executes source text to completion inside the shared sandboxed interpreter, capturing stdout and stderr as ordered chunks.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns method by Name
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "run":
		return s.run, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) run(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	_, err := s.Run(ctx, input.Source,
		func(chunk string) {
			output.Stream = append(output.Stream, Chunk{Channel: ChannelStdout, Text: chunk})
		},
		func(chunk string) {
			output.Stream = append(output.Stream, Chunk{Channel: ChannelStderr, Text: chunk})
		})
	return err
}

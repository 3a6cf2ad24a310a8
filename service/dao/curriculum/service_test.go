package curriculum

import (
	"context"
	"embed"
	"testing"

	"github.com/codelab/tutor/model"
	"github.com/codelab/tutor/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var testFS embed.FS

func newTestService() *Service {
	return New(meta.New(afs.New(), "embed:///testdata", &testFS))
}

func TestService_Load(t *testing.T) {
	service := newTestService()
	curriculum := service.Load(context.Background(), "curriculum")

	assert.Equal(t, "Practical Data Cleaning", curriculum.Title)
	assert.Equal(t, 2, len(curriculum.Sessions))
	assert.Equal(t, 3, curriculum.LessonCount())

	session := curriculum.Sessions[0]
	assert.Equal(t, "Session 1", session.Label)
	assert.Equal(t, "First steps with the dataset", session.Description)

	inspect := session.Lessons[0]
	assert.Equal(t, "lessons/inspect.md", inspect.Markdown)
	assert.Equal(t, "lessons/inspect.py", inspect.File)
	assert.Equal(t, 2, len(inspect.Actions))
	assert.Equal(t, &model.Action{
		Kind:   model.KindCommand,
		Label:  "Run the script",
		Target: "python lessons/inspect.py",
	}, inspect.Actions[0])
	assert.Equal(t, model.KindBrowser, inspect.Actions[1].Kind)

	clean := session.Lessons[1]
	// the malformed tests entry is dropped, the valid ones survive
	assert.Equal(t, 2, len(clean.Actions))
	assert.Equal(t, map[string]interface{}{"session": "scratch"}, clean.Actions[0].With)
	file, command, err := clean.Actions[1].TestsTarget()
	assert.NoError(t, err)
	assert.Equal(t, "lessons/test_clean.py", file)
	assert.Equal(t, "pytest lessons/test_clean.py", command)
}

func TestService_LoadMissingDocument(t *testing.T) {
	service := newTestService()
	curriculum := service.Load(context.Background(), "absent")
	assert.True(t, curriculum.IsEmpty())
}

func TestService_DecodeYAMLMalformed(t *testing.T) {
	service := newTestService()
	_, err := service.DecodeYAML([]byte("- just\n- a\n- sequence\n"))
	assert.Error(t, err)
}

func TestParseShorthand(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      *model.Action
		hasError    bool
	}{
		{
			description: "command action",
			input:       "Run demo(command/python demo.py)",
			expect:      &model.Action{Kind: model.KindCommand, Label: "Run demo", Target: "python demo.py"},
		},
		{
			description: "label with surrounding space",
			input:       "  Open docs (browser/https://example.org) ",
			expect:      &model.Action{Kind: model.KindBrowser, Label: "Open docs", Target: "https://example.org"},
		},
		{
			description: "tests action keeps separator",
			input:       "Verify(tests/test_a.py|pytest test_a.py)",
			expect:      &model.Action{Kind: model.KindTests, Label: "Verify", Target: "test_a.py|pytest test_a.py"},
		},
		{
			description: "unknown kind",
			input:       "Oops(shell/ls)",
			hasError:    true,
		},
		{
			description: "missing parenthesis",
			input:       "Just a label",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := ParseShorthand([]byte(testCase.input))
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		description string
		kind        string
		target      string
		expectErr   bool
	}{
		{
			description: "command action",
			kind:        "command",
			target:      "python demo.py",
		},
		{
			description: "browser action with empty target is a legal no-op",
			kind:        "browser",
			target:      "",
		},
		{
			description: "tests action with one separator",
			kind:        "tests",
			target:      "a.py | run a.py",
		},
		{
			description: "unknown kind",
			kind:        "shell",
			target:      "ls",
			expectErr:   true,
		},
		{
			description: "tests action without separator",
			kind:        "tests",
			target:      "a.py run a.py",
			expectErr:   true,
		},
		{
			description: "tests action with two separators",
			kind:        "tests",
			target:      "a.py|b.py|run",
			expectErr:   true,
		},
		{
			description: "tests action with empty command part",
			kind:        "tests",
			target:      "a.py |  ",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		action, err := ParseAction(testCase.kind, "label", testCase.target)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			var malformed *MalformedActionError
			assert.ErrorAs(t, err, &malformed, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, Kind(testCase.kind), action.Kind, testCase.description)
		assert.Equal(t, testCase.target, action.Target, testCase.description)
	}
}

func TestAction_TestsTarget(t *testing.T) {
	action := &Action{Kind: KindTests, Target: " a.py | run a.py "}
	file, command, err := action.TestsTarget()
	assert.Nil(t, err)
	assert.Equal(t, "a.py", file)
	assert.Equal(t, "run a.py", command)
}

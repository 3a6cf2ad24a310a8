package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLine(t *testing.T) {
	t.Run("short line passes through unchanged", func(t *testing.T) {
		line := "hello world"
		assert.Equal(t, []string{line}, WrapLine(line))
	})

	t.Run("idempotent on already-short lines", func(t *testing.T) {
		line := strings.Repeat("x", Width)
		once := WrapLine(line)
		assert.Equal(t, []string{line}, once)
		assert.Equal(t, once, WrapLine(once[0]))
	})

	t.Run("long line hard-wraps at the column width", func(t *testing.T) {
		line := strings.Repeat("a", Width+10)
		wrapped := WrapLine(line)
		assert.Equal(t, 2, len(wrapped))
		assert.Equal(t, strings.Repeat("a", Width), wrapped[0])
		assert.Equal(t, "  "+strings.Repeat("a", 10), wrapped[1])
	})

	t.Run("continuation lines stay within the column limit", func(t *testing.T) {
		line := strings.Repeat("b", 3*Width)
		for _, wrapped := range WrapLine(line) {
			assert.LessOrEqual(t, len(wrapped), Width)
		}
	})

	t.Run("pre-aligned lines are never wrapped", func(t *testing.T) {
		line := "name   age   salary" + strings.Repeat(" ", 30) + strings.Repeat("x", 60)
		assert.Equal(t, []string{line}, WrapLine(line))
	})
}

func TestWrap(t *testing.T) {
	text := "short\n" + strings.Repeat("c", Width+1)
	wrapped := Wrap(text)
	lines := strings.Split(wrapped, "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "short", lines[0])
}

func TestHeading(t *testing.T) {
	heading := Heading("Terminal Output")
	lines := strings.Split(heading, "\n")
	assert.Equal(t, 2, len(lines))
	assert.Contains(t, lines[0], "TERMINAL OUTPUT")
	// rule matches the title length and indentation
	assert.Equal(t, strings.Index(lines[0], "T"), strings.Index(lines[1], "─"))
	assert.Equal(t, len([]rune(strings.TrimSpace(lines[0]))), len([]rune(strings.TrimSpace(lines[1]))))
}

func TestWarningNote(t *testing.T) {
	t.Run("label padded to eight columns", func(t *testing.T) {
		note := WarningNote("warn", "Warning: something happened")
		assert.True(t, strings.HasPrefix(note, "• [warn    ] "), note)
	})

	t.Run("overlong text truncated with ellipsis", func(t *testing.T) {
		note := WarningNote("deprec", strings.Repeat("w", 120))
		assert.Contains(t, note, "...")
		assert.NotContains(t, note, strings.Repeat("w", 80))
	})

	t.Run("continuation lines align under the content column", func(t *testing.T) {
		note := WarningNote("warn", "Warning: "+strings.Repeat("x", 65))
		lines := strings.Split(note, "\n")
		if assert.Greater(t, len(lines), 1) {
			prefix := lines[0][:strings.Index(lines[0], "] ")+2]
			content := len([]rune(prefix))
			assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", content)))
			assert.NotEqual(t, " ", string([]rune(lines[1])[content]))
		}
	})
}

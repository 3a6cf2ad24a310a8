package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// labelColumns is the fixed width the note label is padded to.
const labelColumns = 8

// noteEllipsis terminates text truncated by WarningNote.
const noteEllipsis = "..."

// noteTruncateAt is the content length kept when a note exceeds Width.
const noteTruncateAt = 75

// WarningNote renders a bullet note for a warning line, e.g.
//
//	• [deprec  ] DeprecationWarning: fillna with 'method' is deprecated
//
// Text longer than Width columns is truncated to 75 characters plus an
// ellipsis. Continuation lines are indented to align under the first
// content column.
func WarningNote(label, text string) string {
	text = strings.TrimSpace(text)
	if runewidth.StringWidth(text) > Width {
		text = runewidth.Truncate(text, noteTruncateAt, "") + noteEllipsis
	}
	prefix := fmt.Sprintf("• [%-*s] ", labelColumns, label)
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))
	available := Width - runewidth.StringWidth(prefix)
	if available < 1 {
		available = 1
	}

	var out []string
	rest := []rune(text)
	for len(rest) > 0 {
		cut := cutAt(rest, available)
		chunk := string(rest[:cut])
		if len(out) == 0 {
			out = append(out, prefix+chunk)
		} else {
			out = append(out, indent+chunk)
		}
		rest = rest[cut:]
	}
	if len(out) == 0 {
		out = append(out, prefix)
	}
	return strings.Join(out, "\n")
}

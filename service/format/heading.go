package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Heading renders text as an upper-cased heading centered within Width
// columns, underlined with a rule of equal length on the next line.
func Heading(text string) string {
	upper := strings.ToUpper(strings.TrimSpace(text))
	width := runewidth.StringWidth(upper)
	padding := 0
	if width < Width {
		padding = (Width - width) / 2
	}
	indent := strings.Repeat(" ", padding)
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(upper)
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(strings.Repeat("─", width))
	return b.String()
}

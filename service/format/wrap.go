package format

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width is the transcript column limit.
const Width = 80

// continuationPrefix marks hard-wrapped continuation lines.
const continuationPrefix = "  "

// alignedRun detects 3+ consecutive whitespace characters; such lines are
// assumed pre-aligned (tabular output) and are never wrapped.
var alignedRun = regexp.MustCompile(`\s{3,}`)

// WrapLine hard-wraps a single line at Width columns. Short lines and
// pre-aligned lines pass through unchanged, so the operation is idempotent
// on anything that already fits.
func WrapLine(line string) []string {
	if alignedRun.MatchString(line) || runewidth.StringWidth(line) <= Width {
		return []string{line}
	}
	out := make([]string, 0, 2)
	rest := []rune(line)
	limit := Width
	for len(rest) > 0 {
		cut := cutAt(rest, limit)
		chunk := string(rest[:cut])
		if len(out) == 0 {
			out = append(out, chunk)
			limit = Width - runewidth.StringWidth(continuationPrefix)
		} else {
			out = append(out, continuationPrefix+chunk)
		}
		rest = rest[cut:]
	}
	return out
}

// Wrap applies WrapLine to every line of text.
func Wrap(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	for _, line := range lines {
		out = append(out, WrapLine(line)...)
	}
	return strings.Join(out, "\n")
}

// cutAt returns the rune index at which the display width reaches limit.
func cutAt(runes []rune, limit int) int {
	width := 0
	for i, r := range runes {
		w := runewidth.RuneWidth(r)
		if width+w > limit {
			if i == 0 {
				return 1
			}
			return i
		}
		width += w
	}
	return len(runes)
}

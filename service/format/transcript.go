package format

import (
	"regexp"
	"strings"

	"github.com/codelab/tutor/internal/clock"
)

// TerminalHeading titles every execution transcript.
const TerminalHeading = "Terminal Output"

// FooterHint is the static line closing every execution transcript.
const FooterHint = "output captured by the lesson runner"

// echoPrefix marks a raw echoed command line; it is rendered as runPrefix.
const (
	echoPrefix = "$ "
	runPrefix  = "▶ "
)

// indent prefixes ordinary output lines.
const indent = "  "

var warningPattern = regexp.MustCompile(`(?i)warning:|deprecationwarning`)

// Transcript assembles the formatted transcript for one execution: centered
// heading, classified output lines and a footer with timestamp and hint.
func Transcript(raw string) string {
	var b strings.Builder
	b.WriteString(Heading(TerminalHeading))
	b.WriteString("\n\n")
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		b.WriteString(ClassifyLine(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(clock.Stamp())
	b.WriteString("\n")
	b.WriteString(FooterHint)
	b.WriteString("\n")
	return b.String()
}

// ClassifyLine applies the stream-to-transcript rules to one raw line:
// echoed commands, warning notes and banners are rendered specially, blank
// lines stay blank, everything else is indented by two spaces.
func ClassifyLine(line string) string {
	switch {
	case strings.HasPrefix(line, echoPrefix):
		return strings.Join(WrapLine(runPrefix+line[len(echoPrefix):]), "\n")
	case warningPattern.MatchString(line):
		return WarningNote(warningLabel(line), line)
	case isBanner(line):
		return line
	case strings.TrimSpace(line) == "":
		return ""
	default:
		return strings.Join(WrapLine(indent+line), "\n")
	}
}

// warningLabel picks the note label from the warning class found in line.
func warningLabel(line string) string {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "deprecationwarning"):
		return "deprec"
	case strings.Contains(lower, "futurewarning"):
		return "future"
	default:
		return "warn"
	}
}

// isBanner reports whether line is a ===...=== separator banner.
func isBanner(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 6 && strings.HasPrefix(trimmed, "===") && strings.HasSuffix(trimmed, "===")
}

package runner

import (
	"regexp"
	"strings"
)

// The tool draws progress bars with ANSI escapes and carriage returns;
// those render as garbage in a plain log pane.
var ansiEscape = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// CleanLine strips ANSI escape sequences and control characters from one
// line of command output and trims surrounding whitespace. With carriage
// returns treated as separators, only the final redraw of a progress line
// survives.
func CleanLine(line string) string {
	line = ansiEscape.ReplaceAllString(line, "")

	// Leftover fragments from sequences split across reads.
	for _, frag := range []string{"[K", "[A", "[?25l", "[?25h", "[?2026l", "[?2026h", "[1G", "[2K"} {
		line = strings.ReplaceAll(line, frag, "")
	}

	if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
		line = line[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r >= 32 || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

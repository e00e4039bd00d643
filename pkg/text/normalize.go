package text

import (
	"strings"
)

// Normalize cleans up recognizer output: runs of spaces and tabs collapse to
// one space, lines are trimmed and consecutive blank lines collapse into a
// single paragraph break.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string

	blank := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")

		if line == "" {
			blank = len(lines) > 0
			continue
		}

		if blank {
			lines = append(lines, "")
			blank = false
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

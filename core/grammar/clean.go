package grammar

import "strings"

// Comment markers. Whichever occurs first in a line wins.
const (
	commentBang = "!!!"
	commentStar = "***"
)

// CleanLine truncates line at the earliest comment marker, keeping
// everything strictly before it. Lines without a marker pass through
// unchanged.
func CleanLine(line string) string {
	cut := len(line)
	if i := strings.Index(line, commentBang); i >= 0 && i < cut {
		cut = i
	}
	if i := strings.Index(line, commentStar); i >= 0 && i < cut {
		cut = i
	}
	return line[:cut]
}

// CleanLines applies CleanLine to every line, preserving length and
// order.
func CleanLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = CleanLine(line)
	}
	return out
}

package grammar

// group.go - Generic line-grouping primitives.
// The parser reuses these at every nesting level (record, mutation,
// sub-record) with a different boundary predicate, so the consumer never
// needs lookahead: boundaries become explicit blank sentinels.

// MarkBoundaries returns lines with an empty-string sentinel inserted
// immediately before every line for which start returns true, including
// a first line that satisfies it.
func MarkBoundaries(start func(string) bool, lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if start(line) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return out
}

// SplitOnBlank partitions lines into maximal runs of non-blank lines.
// Blank lines act purely as separators: consecutive blanks collapse to
// one boundary and leading or trailing blanks produce no empty groups.
// Single forward pass.
func SplitOnBlank(lines []string) [][]string {
	var groups [][]string
	var current []string
	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

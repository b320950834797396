// Package grammar parses and serializes the line-oriented
// protein-mutation annotation format.
//
// The format is a four-level hierarchy without indentation-based
// structure: a protein identifier line opens a record, `<id>` lines open
// mutations, `[id]` lines open sub-records and `>>` lines carry effects.
// Parsing is permissive: a malformed node at any level becomes an
// explicit hole (see annot.Node) and its siblings keep parsing. Strict
// validation happens later, in the rename pass.
package grammar

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/seqcurate/mutagen/core/annot"
)

// Compiled line recognizers. The header patterns are anchored; the
// boundary patterns only decide where a new group starts.
var (
	mutBoundary = regexp.MustCompile(`^<\d+>`)
	subBoundary = regexp.MustCompile(`^\[\d+\]`)

	// ref/alt are \w* rather than \w+ so the empty fields emitted for
	// absent alleles parse back.
	mutHeader = regexp.MustCompile(`^<(?P<id>\w+)>\s*(?P<ref>\w*)\|(?P<start>\d+)-(?P<stop>\d+)\|(?P<alt>\w*)\s+(?P<text>.+)`)
	subHeader = regexp.MustCompile(`^\[(?P<id>\d+)\]\s*(?P<text>.+)`)
)

// structuralPrefixes are the first characters of non-protein lines. Any
// stripped line starting with something else opens a new record.
const structuralPrefixes = "<[>"

const effectMarker = ">>"

// Parse reads an annotation stream, strips comments and parses it into
// records. The only error source is the underlying reader; malformed
// content becomes holes, never an error.
func Parse(r io.Reader) ([]annot.Record, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, CleanLine(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines), nil
}

// ParseLines parses already-cleaned lines into records. Lines are
// whitespace-stripped and blank lines discarded before grouping, so
// callers may pass raw file lines as long as comments were removed.
func ParseLines(lines []string) []annot.Record {
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			stripped = append(stripped, s)
		}
	}

	opensRecord := func(l string) bool {
		return !strings.ContainsRune(structuralPrefixes, rune(l[0]))
	}

	var records []annot.Record
	for _, group := range SplitOnBlank(MarkBoundaries(opensRecord, stripped)) {
		records = append(records, parseRecord(group))
	}
	return records
}

// parseRecord parses one protein block. The first line is the protein
// identifier, verbatim; the rest is regrouped into one sub-group per
// mutation.
func parseRecord(group []string) annot.Record {
	rec := annot.Record{Protein: group[0]}
	body := MarkBoundaries(mutBoundary.MatchString, group[1:])
	for _, mutGroup := range SplitOnBlank(body) {
		rec.Mutations = append(rec.Mutations, parseMutation(mutGroup))
	}
	return rec
}

func parseMutation(group []string) annot.Node[annot.Mutation] {
	if len(group) == 0 {
		return annot.Hole[annot.Mutation]()
	}
	m := mutHeader.FindStringSubmatch(group[0])
	if m == nil {
		return annot.Hole[annot.Mutation]()
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return annot.Hole[annot.Mutation]()
	}
	start, err := strconv.Atoi(m[3])
	if err != nil {
		return annot.Hole[annot.Mutation]()
	}
	stop, err := strconv.Atoi(m[4])
	if err != nil {
		return annot.Hole[annot.Mutation]()
	}

	mut := annot.Mutation{
		ID:          id,
		Start:       start,
		Stop:        stop,
		Ref:         normalizeAllele(m[2]),
		Alt:         normalizeAllele(m[5]),
		Description: strings.TrimSpace(m[6]),
	}
	body := MarkBoundaries(subBoundary.MatchString, group[1:])
	for _, subGroup := range SplitOnBlank(body) {
		mut.SubRecords = append(mut.SubRecords, parseSubRecord(subGroup))
	}
	return annot.Parsed(mut)
}

func parseSubRecord(group []string) annot.Node[annot.SubRecord] {
	if len(group) == 0 {
		return annot.Hole[annot.SubRecord]()
	}
	m := subHeader.FindStringSubmatch(group[0])
	if m == nil {
		return annot.Hole[annot.SubRecord]()
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return annot.Hole[annot.SubRecord]()
	}

	sub := annot.SubRecord{ID: id, Description: m[2]}
	// Effects are one-line leaves; no further grouping.
	for _, line := range group[1:] {
		sub.Effects = append(sub.Effects, parseEffect(line))
	}
	return annot.Parsed(sub)
}

// parseEffect parses one `>> cls|level|target|assoc1;assoc2` line. Up to
// three trailing fields may be omitted; fields beyond the fourth are
// silently discarded.
func parseEffect(line string) annot.Node[annot.Effect] {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, effectMarker)
	s = strings.TrimSpace(s)

	fields := strings.Split(s, "|")
	for len(fields) < 4 {
		fields = append(fields, "")
	}

	cls := fields[0]
	if !annot.ValidClass(cls) {
		return annot.Hole[annot.Effect]()
	}

	eff := annot.Effect{
		Class:  cls,
		Level:  strings.TrimRight(fields[1], "?"),
		Target: strings.TrimRight(fields[2], "?"),
	}
	for _, a := range strings.Split(fields[3], ";") {
		if a != "" {
			eff.Associations = append(eff.Associations, a)
		}
	}
	return annot.Parsed(eff)
}

// normalizeAllele maps the literal token "none" (any case) and the empty
// field to an absent allele.
func normalizeAllele(s string) string {
	if strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

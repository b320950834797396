package grammar

import (
	"fmt"
	"strings"

	"github.com/seqcurate/mutagen/core/annot"
)

// writer.go - Serializer from record trees back to the line format.
// Pure and total over hole-free trees; a hole reaching the writer is a
// programming error (the rename pass rejects them) and panics via
// Node.MustGet.

// Write serializes records to output lines. One tab per depth level:
//
//	protein
//	\t<id> ref|start-stop|alt description
//	\t\t[id] description
//	\t\t\t>> cls|level|target|a1;a2
//
// Absent ref/alt/level/target render as empty fields, never as a literal
// "none".
func Write(records []annot.Record) []string {
	var lines []string
	for _, rec := range records {
		lines = append(lines, writeRecord(rec)...)
	}
	return lines
}

func writeRecord(rec annot.Record) []string {
	lines := []string{rec.Protein}
	for _, mn := range rec.Mutations {
		lines = append(lines, writeMutation(mn.MustGet())...)
	}
	return lines
}

func writeMutation(mut annot.Mutation) []string {
	lines := []string{fmt.Sprintf("\t<%d> %s|%d-%d|%s %s",
		mut.ID, mut.Ref, mut.Start, mut.Stop, mut.Alt, mut.Description)}
	for _, sn := range mut.SubRecords {
		lines = append(lines, writeSubRecord(sn.MustGet())...)
	}
	return lines
}

func writeSubRecord(sub annot.SubRecord) []string {
	lines := []string{fmt.Sprintf("\t\t[%d] %s", sub.ID, sub.Description)}
	for _, en := range sub.Effects {
		lines = append(lines, writeEffect(en.MustGet()))
	}
	return lines
}

func writeEffect(eff annot.Effect) string {
	return fmt.Sprintf("\t\t\t>> %s|%s|%s|%s",
		eff.Class, eff.Level, eff.Target, strings.Join(eff.Associations, ";"))
}

package rename

import (
	"reflect"
	"strings"
	"testing"

	"github.com/seqcurate/mutagen/core/grammar"
)

// TestFinalisePipeline runs the full parse -> validate/rename ->
// serialize path on a small curated block.
func TestFinalisePipeline(t *testing.T) {
	input := strings.Join([]string{
		"P12345",
		"<1> A|10-13|T description one",
		"[1] subrecord text",
		">> ORG|+|liver|X:1;Y:2",
	}, "\n")
	set := MappingSet{"P12345": {"X:1": "X:100", "Y:2": "Y:200"}}

	records, err := grammar.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	renamed, err := ApplyAll(set, records)
	if err != nil {
		t.Fatalf("ApplyAll() error = %v", err)
	}

	got := grammar.Write(renamed)
	want := []string{
		"P12345",
		"\t<1> A|10-13|T description one",
		"\t\t[1] subrecord text",
		"\t\t\t>> ORG|+|liver|X:100;Y:200",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pipeline output = %q, want %q", got, want)
	}
}

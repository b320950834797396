package annot

import (
	"strings"
	"testing"
)

func TestValidClass(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ORG", true},
		{"CEL", true},
		{"PAT", true},
		{"PRO", true},
		{"INT", true},
		{"IND", true},
		{"ENZ", true},
		{"MIM", true},
		{"LOC", true},
		{"TRA", true},
		{"CHA", true},
		{"CAR", true},
		{"UNK", true},
		{"enz", true}, // accepted after case normalization
		{"Loc", true},
		{"XYZ", false},
		{"", false},
		{"ENZYME", false},
	}
	for _, tt := range tests {
		if got := ValidClass(tt.in); got != tt.want {
			t.Errorf("ValidClass(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassIsValidCaseSensitive(t *testing.T) {
	if !Class("ENZ").IsValid() {
		t.Error(`Class("ENZ").IsValid() = false, want true`)
	}
	if Class("enz").IsValid() {
		t.Error(`Class("enz").IsValid() = true, want false`)
	}
}

// completeRecord builds the smallest hole-free record.
func completeRecord() Record {
	return Record{
		Protein: "P12345",
		Mutations: []Node[Mutation]{
			Parsed(Mutation{
				ID: 1, Start: 42, Stop: 43, Ref: "A", Alt: "T",
				Description: "substitution",
				SubRecords: []Node[SubRecord]{
					Parsed(SubRecord{
						ID: 1, Description: "reduces affinity",
						Effects: []Node[Effect]{
							Parsed(Effect{Class: "ENZ", Level: "-", Associations: []string{"X:1"}}),
						},
					}),
				},
			}),
		},
	}
}

func TestComplete(t *testing.T) {
	if !completeRecord().Complete() {
		t.Error("Complete() = false for a hole-free record, want true")
	}
}

func TestCompleteRejectsHolesAndEmptySequences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"no mutations", func(r *Record) {
			r.Mutations = nil
		}},
		{"mutation hole", func(r *Record) {
			r.Mutations = append(r.Mutations, Hole[Mutation]())
		}},
		{"no sub-records", func(r *Record) {
			mut := r.Mutations[0].MustGet()
			mut.SubRecords = nil
			r.Mutations[0] = Parsed(mut)
		}},
		{"sub-record hole", func(r *Record) {
			mut := r.Mutations[0].MustGet()
			mut.SubRecords = append(mut.SubRecords, Hole[SubRecord]())
			r.Mutations[0] = Parsed(mut)
		}},
		{"no effects", func(r *Record) {
			mut := r.Mutations[0].MustGet()
			sub := mut.SubRecords[0].MustGet()
			sub.Effects = nil
			mut.SubRecords[0] = Parsed(sub)
			r.Mutations[0] = Parsed(mut)
		}},
		{"effect hole", func(r *Record) {
			mut := r.Mutations[0].MustGet()
			sub := mut.SubRecords[0].MustGet()
			sub.Effects = append(sub.Effects, Hole[Effect]())
			mut.SubRecords[0] = Parsed(sub)
			r.Mutations[0] = Parsed(mut)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := completeRecord()
			tt.mutate(&rec)
			if rec.Complete() {
				t.Error("Complete() = true, want false")
			}
		})
	}
}

func TestHolesCompleteRecord(t *testing.T) {
	if holes := completeRecord().Holes(); len(holes) != 0 {
		t.Errorf("Holes() = %v, want empty", holes)
	}
}

func TestHolesLocations(t *testing.T) {
	rec := completeRecord()
	mut := rec.Mutations[0].MustGet()
	sub := mut.SubRecords[0].MustGet()
	sub.Effects = append(sub.Effects, Hole[Effect]())
	mut.SubRecords[0] = Parsed(sub)
	mut.SubRecords = append(mut.SubRecords, Hole[SubRecord]())
	rec.Mutations[0] = Parsed(mut)
	rec.Mutations = append(rec.Mutations, Hole[Mutation]())

	holes := rec.Holes()
	if len(holes) != 3 {
		t.Fatalf("len(Holes()) = %d, want 3: %v", len(holes), holes)
	}
	wants := []string{"effect #2", "sub-record #2", "mutation #2"}
	for i, want := range wants {
		if !strings.Contains(holes[i], want) {
			t.Errorf("Holes()[%d] = %q, want it to mention %q", i, holes[i], want)
		}
	}
}

func TestHolesEmptyRecord(t *testing.T) {
	holes := Record{Protein: "P12345"}.Holes()
	if len(holes) != 1 || holes[0] != "no mutations parsed" {
		t.Errorf("Holes() = %v, want [no mutations parsed]", holes)
	}
}

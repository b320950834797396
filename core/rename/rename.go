// Package rename validates parsed annotation records and rewrites their
// association references.
//
// This is the strict half of the permissive-parse/strict-validate split:
// the parser demotes failures to holes, and this pass rejects any record
// still containing one. A record either comes out fully renamed or not
// at all; there is no partial output.
package rename

import (
	"fmt"
	"regexp"

	"github.com/seqcurate/mutagen/core/annot"
	"github.com/seqcurate/mutagen/core/errors"
)

// Association-reference shapes. A confirmed reference is a code followed
// by one or two numeric segments; a phantom reference carries a
// provisional letter-digit tail, with a trailing '?' marking it
// unconfirmed.
var (
	confirmedReference = regexp.MustCompile(`^[A-Z0-9]*(?::\d*){1,2}$`)
	phantomReference   = regexp.MustCompile(`^[A-Z0-9]+:[A-Z]+-\d+\??$`)
)

// ValidReference reports whether s matches the confirmed or phantom
// association-reference shape.
func ValidReference(s string) bool {
	return confirmedReference.MatchString(s) || phantomReference.MatchString(s)
}

// Apply validates rec and returns a new record with every association
// reference replaced through mapping.
//
// It fails, identifying protein and the deepest implicated mutation or
// sub-record id, when the mapping contains a malformed value (even one
// never looked up), when any child sequence is empty or contains a hole,
// or when a referenced association is missing from the mapping. The
// mapping must be exhaustive: unmapped keys are never passed through
// unchanged.
func Apply(mapping Mapping, rec annot.Record) (annot.Record, error) {
	for old, repl := range mapping {
		if !ValidReference(repl) {
			return annot.Record{}, &errors.ValidationError{
				Scope:   rec.Protein,
				Message: fmt.Sprintf("malformed association mapping: %q -> %q", old, repl),
			}
		}
	}

	if len(rec.Mutations) == 0 {
		return annot.Record{}, &errors.ValidationError{
			Scope:   rec.Protein,
			Message: "malformed mutation(s)",
			Err:     errors.ErrIncomplete,
		}
	}
	out := annot.Record{
		Protein:   rec.Protein,
		Mutations: make([]annot.Node[annot.Mutation], 0, len(rec.Mutations)),
	}
	for _, mn := range rec.Mutations {
		mut, ok := mn.Get()
		if !ok {
			return annot.Record{}, &errors.ValidationError{
				Scope:   rec.Protein,
				Message: "malformed mutation(s)",
				Err:     errors.ErrIncomplete,
			}
		}
		renamed, err := applyMutation(mapping, rec.Protein, mut)
		if err != nil {
			return annot.Record{}, err
		}
		out.Mutations = append(out.Mutations, annot.Parsed(renamed))
	}
	return out, nil
}

// ApplyAll applies the per-protein mapping from set to every record,
// stopping at the first failing record.
func ApplyAll(set MappingSet, records []annot.Record) ([]annot.Record, error) {
	out := make([]annot.Record, 0, len(records))
	for _, rec := range records {
		renamed, err := Apply(set.ForProtein(rec.Protein), rec)
		if err != nil {
			return nil, err
		}
		out = append(out, renamed)
	}
	return out, nil
}

func applyMutation(mapping Mapping, protein string, mut annot.Mutation) (annot.Mutation, error) {
	scope := fmt.Sprintf("%s:%d", protein, mut.ID)
	if len(mut.SubRecords) == 0 {
		return annot.Mutation{}, &errors.ValidationError{
			Scope:   scope,
			Message: "malformed subrecord(s)",
			Err:     errors.ErrIncomplete,
		}
	}
	out := mut
	out.SubRecords = make([]annot.Node[annot.SubRecord], 0, len(mut.SubRecords))
	for _, sn := range mut.SubRecords {
		sub, ok := sn.Get()
		if !ok {
			return annot.Mutation{}, &errors.ValidationError{
				Scope:   scope,
				Message: "malformed subrecord(s)",
				Err:     errors.ErrIncomplete,
			}
		}
		renamed, err := applySubRecord(mapping, scope, sub)
		if err != nil {
			return annot.Mutation{}, err
		}
		out.SubRecords = append(out.SubRecords, annot.Parsed(renamed))
	}
	return out, nil
}

func applySubRecord(mapping Mapping, mutScope string, sub annot.SubRecord) (annot.SubRecord, error) {
	scope := fmt.Sprintf("%s:%d", mutScope, sub.ID)
	if len(sub.Effects) == 0 {
		return annot.SubRecord{}, &errors.ValidationError{
			Scope:   scope,
			Message: "malformed effect(s)",
			Err:     errors.ErrIncomplete,
		}
	}
	out := sub
	out.Effects = make([]annot.Node[annot.Effect], 0, len(sub.Effects))
	for _, en := range sub.Effects {
		eff, ok := en.Get()
		if !ok {
			return annot.SubRecord{}, &errors.ValidationError{
				Scope:   scope,
				Message: "malformed effect(s)",
				Err:     errors.ErrIncomplete,
			}
		}
		renamed, err := applyEffect(mapping, scope, eff)
		if err != nil {
			return annot.SubRecord{}, err
		}
		out.Effects = append(out.Effects, annot.Parsed(renamed))
	}
	return out, nil
}

// applyEffect replaces the association list entry by entry, preserving
// order and duplicates.
func applyEffect(mapping Mapping, subScope string, eff annot.Effect) (annot.Effect, error) {
	out := eff
	if len(eff.Associations) == 0 {
		out.Associations = nil
		return out, nil
	}
	out.Associations = make([]string, len(eff.Associations))
	for i, a := range eff.Associations {
		repl, ok := mapping[a]
		if !ok {
			return annot.Effect{}, &errors.ValidationError{
				Scope:   subScope,
				Message: fmt.Sprintf("non-exhaustive association mapping: missing key %q", a),
				Err:     errors.ErrNotFound,
			}
		}
		out.Associations[i] = repl
	}
	return out, nil
}

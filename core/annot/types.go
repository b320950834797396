package annot

// types.go - Annotation tree type definitions.
// This file contains the four-level record tree used throughout mutagen.
// The grammar parser and the rename pass should share these types rather
// than defining their own.

import "strings"

// Class represents an effect category code.
type Class string

// Effect category constants.
const (
	ClassOrganism    Class = "ORG"
	ClassCellular    Class = "CEL"
	ClassPathology   Class = "PAT"
	ClassProcess     Class = "PRO"
	ClassInteraction Class = "INT"
	ClassInduction   Class = "IND"
	ClassEnzymatic   Class = "ENZ"
	ClassMimetic     Class = "MIM"
	ClassLocation    Class = "LOC"
	ClassTransport   Class = "TRA"
	ClassChannel     Class = "CHA"
	ClassCarrier     Class = "CAR"
	ClassUnknown     Class = "UNK"
)

// validClasses is the set of recognized effect categories.
var validClasses = map[Class]bool{
	ClassOrganism:    true,
	ClassCellular:    true,
	ClassPathology:   true,
	ClassProcess:     true,
	ClassInteraction: true,
	ClassInduction:   true,
	ClassEnzymatic:   true,
	ClassMimetic:     true,
	ClassLocation:    true,
	ClassTransport:   true,
	ClassChannel:     true,
	ClassCarrier:     true,
	ClassUnknown:     true,
}

// IsValid returns true if the class is one of the recognized categories.
// The check is case-sensitive; callers normalize first (see ValidClass).
func (c Class) IsValid() bool {
	return validClasses[c]
}

// ValidClass reports whether s case-normalizes to a recognized effect
// category.
func ValidClass(s string) bool {
	return Class(strings.ToUpper(s)).IsValid()
}

// Levels is the defined severity/impact enumeration for Effect.Level.
// Parsed values are currently NOT checked against it; see the package
// documentation before adding that check.
var Levels = []string{"--", "-", "0", "+", "++", "r"}

// Effect is the innermost tree level: one curated observation attached to
// a sub-record.
type Effect struct {
	// Class is the category code. Stored as written in the source; it is
	// accepted when it case-normalizes to a recognized category.
	Class string

	// Level is the severity/impact marker. Empty means absent.
	Level string

	// Target is free text naming the affected entity. Empty means absent.
	Target string

	// Associations holds association references in source order.
	// Duplicates are permitted and order is significant.
	Associations []string
}

// SubRecord groups effects under one curated sub-entry of a mutation.
type SubRecord struct {
	// ID is unique within the owning mutation, not globally.
	ID int

	// Description is free text from the sub-record header line.
	Description string

	// Effects holds the parsed effects, one per body line. A hole marks a
	// line that failed to parse.
	Effects []Node[Effect]
}

// Mutation describes a single sequence change and its sub-records.
type Mutation struct {
	// ID is unique within the owning record.
	ID int

	// Start and Stop are positions as given in the source. No re-basing
	// is applied.
	Start int
	Stop  int

	// Ref and Alt are allele strings. Empty means absent; the source
	// token "none" (any case) denotes absence.
	Ref string
	Alt string

	// Description is free text from the mutation header line.
	Description string

	// SubRecords holds the parsed sub-records in source order.
	SubRecords []Node[SubRecord]
}

// Record is the top-level container: one protein block.
type Record struct {
	// Protein is the identifier from the first line of the block, used
	// verbatim with no format validation.
	Protein string

	// Mutations holds the parsed mutations in source order.
	Mutations []Node[Mutation]
}

// Complete reports whether the record contains no holes at any depth and
// every child sequence is non-empty. Only complete records may be
// serialized.
func (r Record) Complete() bool {
	if len(r.Mutations) == 0 {
		return false
	}
	for _, mn := range r.Mutations {
		mut, ok := mn.Get()
		if !ok || len(mut.SubRecords) == 0 {
			return false
		}
		for _, sn := range mut.SubRecords {
			sub, ok := sn.Get()
			if !ok || len(sub.Effects) == 0 {
				return false
			}
			for _, en := range sub.Effects {
				if en.IsHole() {
					return false
				}
			}
		}
	}
	return true
}

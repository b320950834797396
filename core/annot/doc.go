// Package annot provides the record tree for curated protein-mutation
// annotations.
//
// The tree has four levels:
//
//   - Record: one protein block
//   - Mutation: a single sequence change
//   - SubRecord: a curated sub-entry of a mutation
//   - Effect: one observation line
//
// # Holes
//
// Every child position is a Node: either a parsed value or a hole, an
// explicit marker left where a line or group failed to parse. The parser
// is permissive and demotes failures to holes so that one malformed
// mutation never discards its siblings; the rename pass is strict and
// rejects any record that still contains a hole. Holes occupy slice
// positions, so sibling indices stay stable for error reporting.
//
// # Known validation gap
//
// The Levels enumeration for Effect.Level is defined but parsed values
// are not checked against it, matching the curation pipeline this format
// comes from. Adding the check would reject previously accepted files;
// treat that as a behavior change, not a bug fix.
//
// # Example
//
//	rec := annot.Record{
//	    Protein: "P12345",
//	    Mutations: []annot.Node[annot.Mutation]{
//	        annot.Parsed(annot.Mutation{ID: 1, Start: 10, Stop: 13, Ref: "A", Alt: "T"}),
//	    },
//	}
package annot

package annot

import "fmt"

// Holes returns a human-readable location for every hole and every empty
// child sequence in the record, in document order. An empty result means
// the record is complete.
//
// Positions use 1-based ordinals because parsed ids may be unavailable
// exactly where a hole sits.
func (r Record) Holes() []string {
	var out []string
	if len(r.Mutations) == 0 {
		return []string{"no mutations parsed"}
	}
	for i, mn := range r.Mutations {
		mut, ok := mn.Get()
		if !ok {
			out = append(out, fmt.Sprintf("mutation #%d: malformed", i+1))
			continue
		}
		if len(mut.SubRecords) == 0 {
			out = append(out, fmt.Sprintf("mutation <%d>: no sub-records", mut.ID))
			continue
		}
		for j, sn := range mut.SubRecords {
			sub, ok := sn.Get()
			if !ok {
				out = append(out, fmt.Sprintf("mutation <%d>, sub-record #%d: malformed", mut.ID, j+1))
				continue
			}
			if len(sub.Effects) == 0 {
				out = append(out, fmt.Sprintf("mutation <%d>, sub-record [%d]: no effects", mut.ID, sub.ID))
				continue
			}
			for k, en := range sub.Effects {
				if en.IsHole() {
					out = append(out, fmt.Sprintf("mutation <%d>, sub-record [%d], effect #%d: malformed", mut.ID, sub.ID, k+1))
				}
			}
		}
	}
	return out
}

package rename

import (
	"encoding/json"
	"os"

	"github.com/seqcurate/mutagen/core/errors"
)

// Mapping maps old association references to their replacements for one
// protein.
type Mapping map[string]string

// MappingSet maps protein identifiers to their association mappings.
// The JSON source is an object of objects:
//
//	{"P12345": {"X:1": "X:100", "Y:2": "Y:200"}}
type MappingSet map[string]Mapping

// ForProtein returns the mapping for the given protein, or an empty
// mapping when the protein is absent. An empty mapping still fails any
// record that references at least one association (exhaustiveness).
func (s MappingSet) ForProtein(id string) Mapping {
	if m, ok := s[id]; ok {
		return m
	}
	return Mapping{}
}

// LoadMappings reads a MappingSet from a JSON file.
func LoadMappings(path string) (MappingSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	var set MappingSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, &errors.ParseError{
			Format:  "JSON",
			Path:    path,
			Message: "can't parse association mapping",
			Err:     err,
		}
	}
	return set, nil
}

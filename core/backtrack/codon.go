package backtrack

import "sort"

// codon.go - Static genetic code tables.
// DNA alphabet, forward (codon -> amino acid) tables without stop
// codons, inverted once at init into amino acid -> codon lists.

// standardForward is NCBI translation table 1.
var standardForward = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// mitoForward is NCBI translation table 2 (vertebrate mitochondrial):
// AGA/AGG become stops, ATA codes M and TGA codes W.
var mitoForward = func() map[string]byte {
	m := make(map[string]byte, len(standardForward))
	for codon, acid := range standardForward {
		m[codon] = acid
	}
	delete(m, "AGA")
	delete(m, "AGG")
	m["ATA"] = 'M'
	m["TGA"] = 'W'
	return m
}()

// StandardCodons maps one-letter amino-acid codes to their DNA codons
// under the standard genetic code.
var StandardCodons = invert(standardForward)

// MitoCodons is the vertebrate mitochondrial equivalent.
var MitoCodons = invert(mitoForward)

func invert(forward map[string]byte) map[byte][]string {
	out := make(map[byte][]string)
	for codon, acid := range forward {
		out[acid] = append(out[acid], codon)
	}
	for _, codons := range out {
		sort.Strings(codons)
	}
	return out
}

// Complement maps each DNA base to its complement.
var Complement = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
}

// CodonsFor returns the sorted DNA codons encoding the one-letter
// amino-acid code, under the mitochondrial table when mito is set.
// Unknown codes return nil.
func CodonsFor(acid byte, mito bool) []string {
	if mito {
		return MitoCodons[acid]
	}
	return StandardCodons[acid]
}

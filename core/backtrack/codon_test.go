package backtrack

import (
	"reflect"
	"testing"
)

func TestCodonsForStandard(t *testing.T) {
	tests := []struct {
		acid byte
		want []string
	}{
		{'M', []string{"ATG"}},
		{'W', []string{"TGG"}},
		{'K', []string{"AAA", "AAG"}},
		{'R', []string{"AGA", "AGG", "CGA", "CGC", "CGG", "CGT"}},
		{'L', []string{"CTA", "CTC", "CTG", "CTT", "TTA", "TTG"}},
	}
	for _, tt := range tests {
		got := CodonsFor(tt.acid, false)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CodonsFor(%c, false) = %v, want %v", tt.acid, got, tt.want)
		}
	}
}

func TestCodonsForMito(t *testing.T) {
	tests := []struct {
		acid byte
		want []string
	}{
		{'M', []string{"ATA", "ATG"}},       // ATA is Met in mitochondria
		{'W', []string{"TGA", "TGG"}},       // TGA reads through as Trp
		{'R', []string{"CGA", "CGC", "CGG", "CGT"}}, // AGA/AGG are stops
		{'I', []string{"ATC", "ATT"}},
	}
	for _, tt := range tests {
		got := CodonsFor(tt.acid, true)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CodonsFor(%c, true) = %v, want %v", tt.acid, got, tt.want)
		}
	}
}

func TestCodonsForUnknown(t *testing.T) {
	if got := CodonsFor('B', false); got != nil {
		t.Errorf("CodonsFor('B', false) = %v, want nil", got)
	}
	if got := CodonsFor('?', true); got != nil {
		t.Errorf("CodonsFor('?', true) = %v, want nil", got)
	}
}

func TestTableSizes(t *testing.T) {
	count := func(m map[byte][]string) int {
		n := 0
		for _, codons := range m {
			n += len(codons)
		}
		return n
	}
	// 61 coding codons in the standard table, 60 in the mitochondrial
	// one (AGA/AGG lost to stops, TGA gained from them).
	if got := count(StandardCodons); got != 61 {
		t.Errorf("standard table holds %d codons, want 61", got)
	}
	if got := count(MitoCodons); got != 60 {
		t.Errorf("mitochondrial table holds %d codons, want 60", got)
	}
}

func TestComplement(t *testing.T) {
	for base, comp := range Complement {
		if got := Complement[comp]; got != base {
			t.Errorf("Complement[Complement[%c]] = %c, want %c", base, got, base)
		}
	}
	if len(Complement) != 4 {
		t.Errorf("len(Complement) = %d, want 4", len(Complement))
	}
}

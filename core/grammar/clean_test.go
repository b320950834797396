package grammar

import "testing"

func TestCleanLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no marker here", "no marker here"},
		{"keep this !!! drop this", "keep this "},
		{"keep this *** drop this", "keep this "},
		{"a !!! b *** c", "a "},
		{"a *** b !!! c", "a "},
		{"!!! whole line comment", ""},
		{"*** whole line comment", ""},
		{"", ""},
		{"<1> A|5-6|T text !!! curator note", "<1> A|5-6|T text "},
	}
	for _, tt := range tests {
		if got := CleanLine(tt.in); got != tt.want {
			t.Errorf("CleanLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanLines(t *testing.T) {
	in := []string{"a !!! x", "b", "*** y"}
	want := []string{"a ", "b", ""}
	got := CleanLines(in)
	if len(got) != len(want) {
		t.Fatalf("len(CleanLines()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CleanLines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

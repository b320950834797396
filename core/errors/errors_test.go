package errors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	err := NewParse("JSON", "/tmp/assoc.json", "unexpected token")
	want := "failed to parse JSON at /tmp/assoc.json: unexpected token"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = NewParse("annotation", "", "bad header")
	want = "failed to parse annotation: bad header"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseError without cause should unwrap to ErrInvalidInput")
	}
	cause := errors.New("boom")
	err = &ParseError{Format: "JSON", Message: "x", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ParseError with cause should unwrap to it")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("P12345:3:1", "malformed effect(s)")
	want := "validation failed for P12345:3:1: malformed effect(s)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError without cause should unwrap to ErrInvalidInput")
	}

	err = &ValidationError{Scope: "P12345", Message: "malformed mutation(s)", Err: ErrIncomplete}
	if !errors.Is(err, ErrIncomplete) {
		t.Error("ValidationError with cause should unwrap to it")
	}

	err = &ValidationError{Message: "nothing to do"}
	if got, want := err.Error(), "validation failed: nothing to do"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("codon location", "P12345:10")
	want := "codon location not found: P12345:10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}

	var nfe *NotFoundError
	if !errors.As(error(err), &nfe) {
		t.Error("errors.As failed to recover *NotFoundError")
	}
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIO("read", "/tmp/input.txt", cause)
	want := "failed to read /tmp/input.txt: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	cause := errors.New("boom")
	err := Wrap(cause, "cache lookup")
	if got, want := err.Error(), "cache lookup: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}

	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}
	err = Wrapf(cause, "record %s", "P12345")
	if got, want := err.Error(), "record P12345: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

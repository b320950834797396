package annot

// Node wraps one child of the annotation tree. It is either a parsed
// value or a hole: an explicit marker that the child failed to parse.
// A hole still occupies its slice position, so sibling indices remain
// stable for error reporting.
//
// Holes are produced by the permissive parser and rejected by the rename
// pass. They must never reach the serializer.
type Node[T any] struct {
	value T
	ok    bool
}

// Parsed wraps a successfully parsed value.
func Parsed[T any](v T) Node[T] {
	return Node[T]{value: v, ok: true}
}

// Hole returns the hole marker for a child that failed to parse.
func Hole[T any]() Node[T] {
	return Node[T]{}
}

// Get returns the parsed value and true, or the zero value and false for
// a hole.
func (n Node[T]) Get() (T, bool) {
	return n.value, n.ok
}

// IsHole reports whether the node is a hole.
func (n Node[T]) IsHole() bool {
	return !n.ok
}

// MustGet returns the parsed value and panics on a hole. Callers use it
// only after completeness has been established (Record.Complete or the
// rename pass).
func (n Node[T]) MustGet() T {
	if !n.ok {
		panic("annot: hole in validated tree")
	}
	return n.value
}

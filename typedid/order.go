package typedid

import "golang.org/x/exp/constraints"

// Compare orders two IDs by their underlying values. It returns -1 when a
// sorts before b, +1 when a sorts after b and 0 when the values are equal.
// Suitable as a comparison function for slices.SortFunc.
func Compare[V constraints.Ordered, T any](a, b ID[V, T]) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return +1
	default:
		return 0
	}
}

// Less reports whether a orders before b by underlying value.
func Less[V constraints.Ordered, T any](a, b ID[V, T]) bool {
	return a.value < b.value
}

// Next returns the identifier that follows id in the natural sequence of its
// integer representation. Overflow wraps exactly as it would on V itself.
func Next[V constraints.Integer, T any](id ID[V, T]) ID[V, T] {
	return ID[V, T]{value: id.value + 1}
}

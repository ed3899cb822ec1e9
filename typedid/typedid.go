// Package typedid provides a compile-time marker for identifier values.
//
// Identifier fields of unrelated entities are not interchangeable even when
// they share the same underlying representation. ID wraps the representation
// and marks it with the entity type it belongs to, so a customer identifier
// and an order identifier that are both uint32 become distinct types that the
// compiler keeps apart. The marker is erased at runtime: an ID stores exactly
// one value and nothing else.
package typedid

import "fmt"

// ID wraps an identifier value of type V and marks it with the entity type T
// the identifier belongs to. Two instantiations that differ only in T are
// distinct types with identical runtime representation.
//
// Consumers declare one alias per entity:
//
//	type CustomerID = typedid.ID[uint32, Customer]
//	type OrderID = typedid.ID[uint32, Order]
//
// V must be comparable; IDs then compare with == and work as map keys
// exactly as the bare value would.
type ID[V comparable, T any] struct {
	value V
}

// New wraps the given identifier value. No validation is performed.
func New[T any, V comparable](value V) ID[V, T] {
	return ID[V, T]{value: value}
}

// Unwrap returns the underlying identifier value.
func (id ID[V, T]) Unwrap() V {
	return id.value
}

// IsZero returns true if the underlying value is the zero value of V.
func (id ID[V, T]) IsZero() bool {
	var zero V
	return id.value == zero
}

// Convert re-marks an identifier with another entity type:
//
//	orderID := typedid.Convert[Order](customerID)
//
// Re-marking is always an explicit call; no implicit conversion path exists
// between markers.
func Convert[To any, V comparable, From any](id ID[V, From]) ID[V, To] {
	return ID[V, To]{value: id.value}
}

// String implements fmt.Stringer. An ID renders exactly as its underlying
// value renders.
func (id ID[V, T]) String() string {
	return fmt.Sprint(id.value)
}

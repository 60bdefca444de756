// Package descriptor defines the (identity, name) pairs that every table in
// this module is built from. A type's author supplies descriptors exactly once,
// in declaration order; nothing in this module discovers constants or fields at
// runtime.
package descriptor

// Entry pairs one constant of a finite-valued type with its canonical name.
// Order of entries is meaningful everywhere they are consumed: lookups resolve
// ties by first match, encoders emit in entry order.
type Entry[T comparable] struct {
	Value T
	Name  string
}

// E builds a single enum entry.
func E[T comparable](value T, name string) Entry[T] {
	return Entry[T]{Value: value, Name: name}
}

// Field describes one readable field of a record type. Get projects an
// instance to the field's value; it must be a pure read and must never mutate
// the instance.
type Field[T any] struct {
	Name string
	Get  func(T) any
}

// F builds a field descriptor from an untyped accessor.
func F[T any](name string, get func(T) any) Field[T] {
	return Field[T]{Name: name, Get: get}
}

// Of builds a field descriptor from a typed accessor, keeping the projection
// strongly typed at the declaration site. The value is boxed only at the
// package boundary.
func Of[T any, V any](name string, get func(T) V) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(v T) any { return get(v) },
	}
}

// Names returns the declared names of a field set in declaration order.
func Names[T any](fields []Field[T]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Package tabular derives a static, ordered table of a type's named parts —
// the constants of a finite-valued type or the readable fields of a record
// type — and drives two generic operations off it: name/value conversion and
// delimited text encoding. Tables are declared once by the type's author and
// shared process-wide; no operation inspects type structure at runtime.
//
// Declare the tables next to the types they describe:
//
//	type Weekday int
//
//	const (
//		Monday Weekday = iota
//		Tuesday
//		// ...
//	)
//
//	var _ = tabular.Enum(
//		tabular.E(Monday, "monday"),
//		tabular.E(Tuesday, "tuesday"),
//	)
//
// and use the free functions anywhere after that:
//
//	name, _ := tabular.ToString(Monday)
//	day, err := tabular.Parse[Weekday]("MONDAY", enum.Fold)
package tabular

import (
	"fmt"
	"iter"

	"github.com/Konsultn-Engineering/tabular/descriptor"
	"github.com/Konsultn-Engineering/tabular/encode"
	"github.com/Konsultn-Engineering/tabular/enum"
	"github.com/Konsultn-Engineering/tabular/registry"
)

// Re-exported descriptor types; most callers never import the subpackages.
type (
	Entry[T comparable] = descriptor.Entry[T]
	Field[T any]        = descriptor.Field[T]
	Equivalence         = enum.Equivalence
)

// E builds a single enum entry.
func E[T comparable](value T, name string) Entry[T] {
	return descriptor.E(value, name)
}

// F builds a field descriptor from an untyped accessor.
func F[T any](name string, get func(T) any) Field[T] {
	return descriptor.F(name, get)
}

// Of builds a field descriptor from a typed accessor.
func Of[T any, V any](name string, get func(T) V) Field[T] {
	return descriptor.Of(name, get)
}

// Enum registers T's name table in the default context and returns it.
// Entry order is declaration order and fixes first-match resolution.
func Enum[T comparable](entries ...Entry[T]) *enum.Table[T] {
	return registry.Enum(registry.Default, entries...)
}

// Record registers T's encoder in the default context and returns it.
func Record[T any](fields ...Field[T]) *encode.Encoder[T] {
	return registry.Record(registry.Default, fields...)
}

// ToString returns the declared name of v. Total for every constant of a
// registered finite-valued type; fails only when T was never registered.
func ToString[T comparable](v T) (string, error) {
	table, ok := registry.EnumOf[T](registry.Default)
	if !ok {
		var zero T
		return "", notRegistered(zero)
	}
	return table.String(v), nil
}

// Parse returns the first registered constant of T whose name satisfies the
// equivalence (exact equality when none is supplied). Fails with
// enum.ErrNoMatchingName when no entry matches.
func Parse[T comparable](name string, eq ...Equivalence) (T, error) {
	table, ok := registry.EnumOf[T](registry.Default)
	if !ok {
		var zero T
		return zero, notRegistered(zero)
	}
	return table.Parse(name, eq...)
}

// Header returns T's header line: the registered field labels in declaration
// order, joined by the delimiter.
func Header[T any]() (string, error) {
	return registry.Header[T](registry.Default)
}

// Row returns one instance's field values in declaration order, rendered and
// joined by the delimiter.
func Row[T any](v T) (string, error) {
	enc, ok := registry.RecordOf[T](registry.Default)
	if !ok {
		return "", notRegistered(v)
	}
	return enc.Row(v)
}

// Encode returns the header line followed by one row per instance in input
// order, each line terminated by a line break.
func Encode[T any](instances []T) (string, error) {
	enc, ok := registry.RecordOf[T](registry.Default)
	if !ok {
		var zero T
		return "", notRegistered(zero)
	}
	return enc.Encode(instances)
}

// EncodeSeq is Encode over any finite forward-traversable sequence.
func EncodeSeq[T any](instances iter.Seq[T]) (string, error) {
	enc, ok := registry.RecordOf[T](registry.Default)
	if !ok {
		var zero T
		return "", notRegistered(zero)
	}
	return enc.EncodeSeq(instances)
}

func notRegistered(zero any) error {
	return fmt.Errorf("%w: %T", registry.ErrNotRegistered, zero)
}

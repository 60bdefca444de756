// Package enum provides ordered name tables for finite-valued types and the
// forward/reverse lookups built on them. A table is constructed once from the
// type's declared entries and never mutated; every operation is a bounded scan
// over that table, so repeated calls are byte-identical.
package enum

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/Konsultn-Engineering/tabular/descriptor"
)

// ErrNoMatchingName reports a reverse lookup that exhausted the table without
// any entry satisfying the equivalence predicate.
var ErrNoMatchingName = fmt.Errorf("enum: no matching name")

// Equivalence compares two name representations during reverse lookup. It must
// be a pure function of its two arguments.
type Equivalence func(a, b string) bool

// Exact is the default equivalence: byte-for-byte equality.
func Exact(a, b string) bool { return a == b }

// Fold matches names case-insensitively under Unicode case folding.
func Fold(a, b string) bool { return strings.EqualFold(a, b) }

// Table is the immutable, ordered name table of one finite-valued type.
// Entry order equals declaration order; duplicate names are retained and
// resolved first-match.
type Table[T comparable] struct {
	entries  []descriptor.Entry[T]
	typeName string
}

// New builds the table for T from its declared entries. Call it once per type,
// typically in a package-level var, and share the result.
func New[T comparable](entries ...descriptor.Entry[T]) *Table[T] {
	t := &Table[T]{
		entries:  make([]descriptor.Entry[T], len(entries)),
		typeName: reflect.TypeOf((*T)(nil)).Elem().Name(),
	}
	copy(t.entries, entries)
	return t
}

// String returns the declared name of v. For a value outside the declared
// set it falls back to the stringer-style form TypeName(value), keeping the
// operation total and deterministic.
func (t *Table[T]) String(v T) string {
	for _, e := range t.entries {
		if e.Value == v {
			return e.Name
		}
	}
	return fmt.Sprintf("%s(%v)", t.typeName, v)
}

// Parse returns the value of the first entry whose name satisfies the given
// equivalence. With no equivalence supplied it matches exactly. The table is
// scanned in declaration order, so aliased names resolve to their first entry.
func (t *Table[T]) Parse(name string, eq ...Equivalence) (T, error) {
	match := Equivalence(Exact)
	if len(eq) > 0 && eq[0] != nil {
		match = eq[0]
	}
	for _, e := range t.entries {
		if match(e.Name, name) {
			return e.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q is not a %s", ErrNoMatchingName, name, t.typeName)
}

// Names returns the declared names in declaration order.
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Values returns the declared values in declaration order.
func (t *Table[T]) Values() []T {
	values := make([]T, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.Value
	}
	return values
}

// Len returns the number of declared entries.
func (t *Table[T]) Len() int { return len(t.entries) }

// TypeName returns the Go name of the table's type.
func (t *Table[T]) TypeName() string { return t.typeName }

// All iterates the table's (value, name) pairs in declaration order.
func (t *Table[T]) All() iter.Seq2[T, string] {
	return func(yield func(T, string) bool) {
		for _, e := range t.entries {
			if !yield(e.Value, e.Name) {
				return
			}
		}
	}
}

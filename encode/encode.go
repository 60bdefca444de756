// Package encode emits record types as delimited text: one header line of
// field labels followed by one line per instance, every field rendered through
// its type's natural textual form. The format is deliberately plain — fields
// are joined with a literal delimiter and never quoted or escaped, so values
// containing the delimiter are the caller's problem, not this package's.
package encode

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/Konsultn-Engineering/tabular/descriptor"
	"github.com/Konsultn-Engineering/tabular/naming"
	"github.com/Konsultn-Engineering/tabular/render"
)

// DefaultDelimiter joins fields within a line.
const DefaultDelimiter = ", "

type config struct {
	delimiter string
	naming    naming.Strategy
}

// Option configures an Encoder at construction time.
type Option func(*config)

// WithDelimiter sets the field delimiter for the header and every row.
func WithDelimiter(d string) Option {
	return func(c *config) { c.delimiter = d }
}

// WithNaming sets the strategy applied to declared field names and the
// record type name.
func WithNaming(s naming.Strategy) Option {
	return func(c *config) { c.naming = s }
}

// Encoder renders instances of one record type through its field table.
// Construction fixes the field order, labels, and delimiter; afterwards every
// method is a pure transform, safe for concurrent use.
type Encoder[T any] struct {
	fields    []descriptor.Field[T]
	labels    []string
	delimiter string
	typeName  string
	tableName string
}

// New builds the encoder for T from its declared fields. Labels and the
// collection name are derived once, here; encoding never revisits the naming
// strategy.
func New[T any](fields []descriptor.Field[T], opts ...Option) *Encoder[T] {
	cfg := config{
		delimiter: DefaultDelimiter,
		naming:    naming.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	typeName := reflect.TypeOf((*T)(nil)).Elem().Name()

	e := &Encoder[T]{
		fields:    make([]descriptor.Field[T], len(fields)),
		labels:    make([]string, len(fields)),
		delimiter: cfg.delimiter,
		typeName:  typeName,
		tableName: cfg.naming.TypeName(typeName),
	}
	copy(e.fields, fields)
	for i, f := range fields {
		e.labels[i] = cfg.naming.FieldName(f.Name)
	}
	return e
}

// Header returns the field labels in declaration order, joined by the
// delimiter. It never fails: labels are fixed at construction.
func (e *Encoder[T]) Header() string {
	return strings.Join(e.labels, e.delimiter)
}

// Row projects each field out of v in declaration order, renders it, and
// joins the results with the delimiter. Fails if any field's type has no
// textual rendering.
func (e *Encoder[T]) Row(v T) (string, error) {
	var b strings.Builder
	for i, f := range e.fields {
		if i > 0 {
			b.WriteString(e.delimiter)
		}
		s, err := render.Render(f.Get(v))
		if err != nil {
			return "", fmt.Errorf("encode %s.%s: %w", e.typeName, f.Name, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Encode emits the header followed by one row per instance, in input order,
// each line terminated by a line break.
func (e *Encoder[T]) Encode(instances []T) (string, error) {
	var b strings.Builder
	b.WriteString(e.Header())
	b.WriteByte('\n')
	for _, v := range instances {
		row, err := e.Row(v)
		if err != nil {
			return "", err
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// EncodeSeq is Encode over any finite forward-traversable sequence.
func (e *Encoder[T]) EncodeSeq(instances iter.Seq[T]) (string, error) {
	var b strings.Builder
	b.WriteString(e.Header())
	b.WriteByte('\n')
	for v := range instances {
		row, err := e.Row(v)
		if err != nil {
			return "", err
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Fields returns the declared field names in declaration order, before any
// naming strategy is applied.
func (e *Encoder[T]) Fields() []string {
	return descriptor.Names(e.fields)
}

// Labels returns the header labels in declaration order.
func (e *Encoder[T]) Labels() []string {
	labels := make([]string, len(e.labels))
	copy(labels, e.labels)
	return labels
}

// Delimiter returns the configured field delimiter.
func (e *Encoder[T]) Delimiter() string { return e.delimiter }

// TypeName returns the Go name of the record type.
func (e *Encoder[T]) TypeName() string { return e.typeName }

// TableName returns the collection name derived from the record type's name
// by the configured naming strategy.
func (e *Encoder[T]) TableName() string { return e.tableName }

// Package registry stores one table per type per context, built exactly once
// at registration and shared by every subsequent lookup. Types are keyed by
// identity (reflect.Type) only; the registry never inspects a type's
// structure. Concurrent duplicate registrations build content-identical
// tables, so whichever lands first is adopted and the rest are discarded.
package registry

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Konsultn-Engineering/tabular/cache"
	"github.com/Konsultn-Engineering/tabular/descriptor"
	"github.com/Konsultn-Engineering/tabular/encode"
	"github.com/Konsultn-Engineering/tabular/enum"
	"github.com/Konsultn-Engineering/tabular/utils"
)

// DefaultDelimiter is the field delimiter used by contexts with no override.
const DefaultDelimiter = encode.DefaultDelimiter

// ErrNotRegistered reports an operation on a type that has no table in the
// context. Unlike a table value held by the caller, the free functions cannot
// build a table they were never given entries for.
var ErrNotRegistered = fmt.Errorf("registry: type not registered")

type typeStore = sync.Map // map[reflect.Type]*Registration

// Registration records one table's admission into a context.
type Registration struct {
	ID   ulid.ULID
	Kind cache.Kind
	Type reflect.Type
	At   time.Time

	table any
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Enum builds and registers the name table for T. If T is already registered
// the existing table is returned unchanged; registration is once per type per
// context, and racing registrations adopt whichever build landed first.
func Enum[T comparable](ctx *Context, entries ...descriptor.Entry[T]) *enum.Table[T] {
	t := typeOf[T]()
	if reg, ok := ctx.tables.Load(t); ok {
		return reg.(*Registration).table.(*enum.Table[T])
	}

	reg := &Registration{
		ID:    ctx.ids.Next(),
		Kind:  cache.KindEnum,
		Type:  t,
		At:    time.Now(),
		table: enum.New(entries...),
	}
	actual, _ := ctx.tables.LoadOrStore(t, reg)
	return actual.(*Registration).table.(*enum.Table[T])
}

// Record builds and registers the encoder for T, bound to the context's
// naming strategy and delimiter. Same once-per-type semantics as Enum.
func Record[T any](ctx *Context, fields ...descriptor.Field[T]) *encode.Encoder[T] {
	t := typeOf[T]()
	if reg, ok := ctx.tables.Load(t); ok {
		return reg.(*Registration).table.(*encode.Encoder[T])
	}

	reg := &Registration{
		ID:   ctx.ids.Next(),
		Kind: cache.KindRecord,
		Type: t,
		At:   time.Now(),
		table: encode.New(fields,
			encode.WithDelimiter(ctx.delimiter),
			encode.WithNaming(ctx.namingStrategy),
		),
	}
	actual, _ := ctx.tables.LoadOrStore(t, reg)
	return actual.(*Registration).table.(*encode.Encoder[T])
}

// EnumOf returns T's registered name table.
func EnumOf[T comparable](ctx *Context) (*enum.Table[T], bool) {
	reg, ok := ctx.tables.Load(typeOf[T]())
	if !ok {
		return nil, false
	}
	table, ok := reg.(*Registration).table.(*enum.Table[T])
	return table, ok
}

// RecordOf returns T's registered encoder.
func RecordOf[T any](ctx *Context) (*encode.Encoder[T], bool) {
	reg, ok := ctx.tables.Load(typeOf[T]())
	if !ok {
		return nil, false
	}
	enc, ok := reg.(*Registration).table.(*encode.Encoder[T])
	return enc, ok
}

// Header returns T's rendered header line, memoized in the context's header
// cache. The cache key mixes the type identity with the delimiter so contexts
// sharing a type but not a delimiter never collide.
func Header[T any](ctx *Context) (string, error) {
	enc, ok := RecordOf[T](ctx)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, typeOf[T]())
	}

	fp := utils.Mix64(
		utils.FingerprintString(typeOf[T]().String()),
		utils.FingerprintString(enc.Delimiter()),
	)
	key := cache.GenerateFixedKey(cache.KindRecord, fp)

	if h, ok := ctx.headers.Get(key); ok {
		return h, nil
	}
	h := enc.Header()
	ctx.headers.Set(key, h)
	return h, nil
}

// Registrations returns a snapshot of the context's registrations in
// registration order.
func (ctx *Context) Registrations() []Registration {
	var regs []Registration
	ctx.tables.Range(func(_, v any) bool {
		regs = append(regs, *v.(*Registration))
		return true
	})
	slices.SortFunc(regs, func(a, b Registration) int {
		return a.ID.Compare(b.ID)
	})
	return regs
}

// Len returns the number of registered types in the context.
func (ctx *Context) Len() int {
	n := 0
	ctx.tables.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

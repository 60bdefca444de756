// Package render maps field values to their natural textual representation.
//
// Renderers are registered per concrete type, once, via Register. The package
// seeds the registry with every type the encoder treats as first-class:
// strings, booleans, all integer widths, floats, byte slices, time values,
// UUIDs and ULIDs. Types implementing fmt.Stringer render through String()
// without registration. Anything else is an unsupported field.
package render

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ErrUnsupportedField reports a value whose type has no textual rendering.
var ErrUnsupportedField = fmt.Errorf("render: unsupported field type")

var renderers = sync.Map{} // map[reflect.Type]func(any) string

// Register installs the renderer for type T, replacing any previous one.
// Registration is process-global; renderers must be pure functions of their
// argument so repeated rendering stays byte-identical.
func Register[T any](fn func(T) string) {
	var zero T
	renderers.Store(reflect.TypeOf(zero), func(v any) string {
		return fn(v.(T))
	})
}

func init() {
	Register[string](func(v string) string { return v })
	Register[bool](strconv.FormatBool)

	Register[int](func(v int) string { return strconv.FormatInt(int64(v), 10) })
	Register[int8](func(v int8) string { return strconv.FormatInt(int64(v), 10) })
	Register[int16](func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	Register[int32](func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	Register[int64](func(v int64) string { return strconv.FormatInt(v, 10) })

	Register[uint](func(v uint) string { return strconv.FormatUint(uint64(v), 10) })
	Register[uint8](func(v uint8) string { return strconv.FormatUint(uint64(v), 10) })
	Register[uint16](func(v uint16) string { return strconv.FormatUint(uint64(v), 10) })
	Register[uint32](func(v uint32) string { return strconv.FormatUint(uint64(v), 10) })
	Register[uint64](func(v uint64) string { return strconv.FormatUint(v, 10) })

	Register[float32](func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) })
	Register[float64](func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })

	Register[[]byte](func(v []byte) string { return string(v) })
	Register[json.RawMessage](func(v json.RawMessage) string { return string(v) })

	Register[time.Time](func(v time.Time) string { return v.Format(time.RFC3339) })
	Register[time.Duration](time.Duration.String)

	Register[uuid.UUID](uuid.UUID.String)
	Register[ulid.ULID](ulid.ULID.String)
}

// Render returns the textual form of v. A nil value renders as the empty
// string. Resolution order: registered renderer for the concrete type, then
// fmt.Stringer. A miss on both is reported as ErrUnsupportedField.
func Render(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	if fn, ok := renderers.Load(reflect.TypeOf(v)); ok {
		return fn.(func(any) string)(v), nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedField, v)
}

// Supported reports whether values of v's concrete type can be rendered.
func Supported(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := renderers.Load(reflect.TypeOf(v)); ok {
		return true
	}
	_, ok := v.(fmt.Stringer)
	return ok
}

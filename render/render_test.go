package render

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type stringered struct{ label string }

func (s stringered) String() string { return s.label }

type opaque struct{ n int }

type temperature float64

// =========================================================================
// Builtin Renderer Tests
// =========================================================================

func TestRenderBuiltins(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	lid := ulid.MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"String", "secret", "secret"},
		{"EmptyString", "", ""},
		{"BoolTrue", true, "true"},
		{"BoolFalse", false, "false"},
		{"Int", 42, "42"},
		{"IntNegative", -7, "-7"},
		{"Int64", int64(45678), "45678"},
		{"Uint8", uint8(255), "255"},
		{"Uint64", uint64(0), "0"},
		{"Float64", 3.5, "3.5"},
		{"Float64Whole", float64(1), "1"},
		{"Float32", float32(0.25), "0.25"},
		{"Bytes", []byte("raw"), "raw"},
		{"Time", at, "2024-03-01T12:30:00Z"},
		{"Duration", 90 * time.Second, "1m30s"},
		{"UUID", id, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"ULID", lid, "01ARZ3NDEKTSV4RRFFQ69G5FAV"},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// =========================================================================
// Resolution Tests
// =========================================================================

func TestRenderStringerFallback(t *testing.T) {
	got, err := Render(stringered{label: "via stringer"})
	require.NoError(t, err)
	assert.Equal(t, "via stringer", got)

	// net.IP implements fmt.Stringer and is not registered.
	got, err = Render(net.IPv4(127, 0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", got)
}

func TestRenderUnsupported(t *testing.T) {
	_, err := Render(opaque{n: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedField)
	assert.Contains(t, err.Error(), "render.opaque")
}

func TestRegisterCustomRenderer(t *testing.T) {
	assert.False(t, Supported(temperature(0)))

	Register[temperature](func(v temperature) string {
		return strconv.FormatFloat(float64(v), 'g', -1, 64) + "C"
	})

	got, err := Render(temperature(21.5))
	require.NoError(t, err)
	assert.Equal(t, "21.5C", got)
	assert.True(t, Supported(temperature(0)))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("x"))
	assert.True(t, Supported(42))
	assert.True(t, Supported(nil))
	assert.True(t, Supported(stringered{}))
	assert.False(t, Supported(opaque{}))
}

func TestRenderDeterminism(t *testing.T) {
	first, err := Render(uint64(45678))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Render(uint64(45678))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

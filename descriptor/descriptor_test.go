package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type color int

const (
	red color = iota
	green
	blue
)

type account struct {
	Name  string
	Karma int
}

// =========================================================================
// Entry Tests
// =========================================================================

func TestEntry(t *testing.T) {
	e := E(green, "green")
	assert.Equal(t, green, e.Value)
	assert.Equal(t, "green", e.Name)
}

func TestEntryOrderIsDeclarationOrder(t *testing.T) {
	entries := []Entry[color]{
		E(red, "red"),
		E(green, "green"),
		E(blue, "blue"),
	}

	for i, want := range []string{"red", "green", "blue"} {
		assert.Equal(t, want, entries[i].Name)
	}
}

// =========================================================================
// Field Tests
// =========================================================================

func TestFieldAccessors(t *testing.T) {
	a := account{Name: "John Doe", Karma: 42}

	tests := []struct {
		name  string
		field Field[account]
		want  any
	}{
		{
			name:  "UntypedAccessor",
			field: F("name", func(a account) any { return a.Name }),
			want:  "John Doe",
		},
		{
			name:  "TypedAccessor",
			field: Of("karma", func(a account) int { return a.Karma }),
			want:  42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.field.Get)
			assert.Equal(t, tt.want, tt.field.Get(a))
		})
	}
}

func TestFieldAccessorDoesNotMutate(t *testing.T) {
	a := account{Name: "John Doe", Karma: 42}
	f := Of("karma", func(a account) int { return a.Karma })

	_ = f.Get(a)
	_ = f.Get(a)

	assert.Equal(t, account{Name: "John Doe", Karma: 42}, a)
}

func TestNames(t *testing.T) {
	fields := []Field[account]{
		Of("name", func(a account) string { return a.Name }),
		Of("karma", func(a account) int { return a.Karma }),
	}

	assert.Equal(t, []string{"name", "karma"}, Names(fields))
	assert.Empty(t, Names[account](nil))
}

package encode

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/tabular/descriptor"
	"github.com/Konsultn-Engineering/tabular/naming"
	"github.com/Konsultn-Engineering/tabular/render"
)

// =========================================================================
// Test Data Structures
// =========================================================================

type User struct {
	Name     string
	Password string
	Karma    int
	Cash     uint64
}

func userFields() []descriptor.Field[User] {
	return []descriptor.Field[User]{
		descriptor.Of("name", func(u User) string { return u.Name }),
		descriptor.Of("password", func(u User) string { return u.Password }),
		descriptor.Of("karma", func(u User) int { return u.Karma }),
		descriptor.Of("cash", func(u User) uint64 { return u.Cash }),
	}
}

var sampleUsers = []User{
	{Name: "John Doe", Password: "secret", Karma: 42, Cash: 0},
	{Name: "Max Mustermann", Password: "****", Karma: 1, Cash: 45678},
}

type Session struct {
	ID   uuid.UUID
	Open bool
}

type Holder struct {
	Inner struct{ X int }
}

// =========================================================================
// Header Tests
// =========================================================================

func TestHeader(t *testing.T) {
	enc := New(userFields())
	assert.Equal(t, "name, password, karma, cash", enc.Header())
}

func TestHeaderCustomDelimiter(t *testing.T) {
	enc := New(userFields(), WithDelimiter(";"))
	assert.Equal(t, "name;password;karma;cash", enc.Header())
}

func TestHeaderNamingStrategy(t *testing.T) {
	fields := []descriptor.Field[User]{
		descriptor.Of("FirstName", func(u User) string { return u.Name }),
		descriptor.Of("KarmaScore", func(u User) int { return u.Karma }),
	}
	enc := New(fields, WithNaming(naming.Snake()))

	assert.Equal(t, "first_name, karma_score", enc.Header())
	assert.Equal(t, []string{"FirstName", "KarmaScore"}, enc.Fields())
	assert.Equal(t, []string{"first_name", "karma_score"}, enc.Labels())
}

// =========================================================================
// Row Tests
// =========================================================================

func TestRow(t *testing.T) {
	enc := New(userFields())

	row, err := enc.Row(sampleUsers[0])
	require.NoError(t, err)
	assert.Equal(t, "John Doe, secret, 42, 0", row)

	row, err = enc.Row(sampleUsers[1])
	require.NoError(t, err)
	assert.Equal(t, "Max Mustermann, ****, 1, 45678", row)
}

func TestRowNoEscaping(t *testing.T) {
	enc := New(userFields())

	// Delimiter-bearing values pass through verbatim; the format does not
	// quote or escape.
	row, err := enc.Row(User{Name: "Doe, John", Password: "a, b"})
	require.NoError(t, err)
	assert.Equal(t, "Doe, John, a, b, 0, 0", row)
}

func TestRowUnsupportedField(t *testing.T) {
	fields := []descriptor.Field[Holder]{
		descriptor.F("inner", func(h Holder) any { return h.Inner }),
	}
	enc := New(fields)

	_, err := enc.Row(Holder{})
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrUnsupportedField)
	assert.Contains(t, err.Error(), "Holder.inner")
}

func TestRowRendersUUID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	fields := []descriptor.Field[Session]{
		descriptor.Of("id", func(s Session) uuid.UUID { return s.ID }),
		descriptor.Of("open", func(s Session) bool { return s.Open }),
	}
	enc := New(fields)

	row, err := enc.Row(Session{ID: id, Open: true})
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8, true", row)
}

// =========================================================================
// Encode Tests
// =========================================================================

func TestEncode(t *testing.T) {
	enc := New(userFields())

	got, err := enc.Encode(sampleUsers)
	require.NoError(t, err)

	expected := "name, password, karma, cash\n" +
		"John Doe, secret, 42, 0\n" +
		"Max Mustermann, ****, 1, 45678\n"
	assert.Equal(t, expected, got)
}

func TestEncodeEmpty(t *testing.T) {
	enc := New(userFields())

	got, err := enc.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "name, password, karma, cash\n", got)
}

func TestEncodeSeq(t *testing.T) {
	enc := New(userFields())

	fromSlice, err := enc.Encode(sampleUsers)
	require.NoError(t, err)

	fromSeq, err := enc.EncodeSeq(slices.Values(sampleUsers))
	require.NoError(t, err)

	assert.Equal(t, fromSlice, fromSeq)
}

func TestEncodePreservesInputOrder(t *testing.T) {
	enc := New(userFields())

	reversed := []User{sampleUsers[1], sampleUsers[0]}
	got, err := enc.Encode(reversed)
	require.NoError(t, err)

	expected := "name, password, karma, cash\n" +
		"Max Mustermann, ****, 1, 45678\n" +
		"John Doe, secret, 42, 0\n"
	assert.Equal(t, expected, got)
}

func TestEncodeDeterminism(t *testing.T) {
	enc := New(userFields())

	first, err := enc.Encode(sampleUsers)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := enc.Encode(sampleUsers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// =========================================================================
// Metadata Tests
// =========================================================================

func TestTableName(t *testing.T) {
	enc := New(userFields())
	assert.Equal(t, "User", enc.TypeName())
	assert.Equal(t, "users", enc.TableName())
}

func TestEncoderImmutability(t *testing.T) {
	fields := userFields()
	enc := New(fields)

	fields[0].Name = "mutated"

	assert.Equal(t, "name, password, karma, cash", enc.Header())
}

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// phoneStrings flattens a record's phones for comparisons.
func phoneStrings(r *engine.Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func newRecord(t *testing.T, name string, phones ...string) *engine.Record {
	t.Helper()
	r, err := engine.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord_EmptyName(t *testing.T) {
	r, err := engine.NewRecord("   ")

	assert.Nil(t, r)
	assert.ErrorIs(t, err, engine.ErrValidation)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	err := r.AddPhone("12345")
	require.ErrorIs(t, err, engine.ErrValidation)

	// No duplicate check at this layer.
	require.NoError(t, r.AddPhone("1111111111"))
	assert.Equal(t, []string{"1111111111", "1111111111"}, phoneStrings(r))
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111", "2222222222", "1111111111")

	require.NoError(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []string{"2222222222", "1111111111"}, phoneStrings(r), "Only the first match is removed")
}

func TestRecord_RemovePhone_Missing(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	err := r.RemovePhone("9999999999")

	require.ErrorIs(t, err, engine.ErrNotFound)
	assert.Equal(t, []string{"1111111111"}, phoneStrings(r), "Phone list must be unchanged")
}

func TestRecord_RemovePhone_Invalid(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	err := r.RemovePhone("abc")

	require.ErrorIs(t, err, engine.ErrValidation)
	assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
}

func TestRecord_EditPhone(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111", "2222222222")

	require.NoError(t, r.EditPhone("1111111111", "3333333333"))

	p, ok := r.FindPhone("3333333333")
	require.True(t, ok)
	assert.Equal(t, "3333333333", p.String())

	_, ok = r.FindPhone("1111111111")
	assert.False(t, ok)
	assert.Equal(t, []string{"3333333333", "2222222222"}, phoneStrings(r), "Position is preserved")
}

func TestRecord_EditPhone_InvalidNew(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	err := r.EditPhone("1111111111", "bad")

	require.ErrorIs(t, err, engine.ErrValidation)
	assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
}

func TestRecord_EditPhone_NoMatchLeavesRecord(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	require.NoError(t, r.EditPhone("9999999999", "3333333333"))
	assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
}

func TestRecord_Birthday(t *testing.T) {
	r := newRecord(t, "Ann")

	_, ok := r.Birthday()
	assert.False(t, ok, "New records have no birthday")

	require.NoError(t, r.SetBirthday("12.06.1990"))
	require.NoError(t, r.SetBirthday("13.06.1990"))

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "13.06.1990", b.String(), "SetBirthday overwrites")

	require.ErrorIs(t, r.SetBirthday("31.02.2000"), engine.ErrValidation)
	b, _ = r.Birthday()
	assert.Equal(t, "13.06.1990", b.String(), "A rejected birthday keeps the previous one")
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, "Contact name: Ann, phones: 1111111111; 2222222222",
		newRecord(t, "Ann", "1111111111", "2222222222").String())
	assert.Equal(t, "Contact name: Bob, phones: ", newRecord(t, "Bob").String())
}

func TestRecord_PhonesIsACopy(t *testing.T) {
	r := newRecord(t, "Ann", "1111111111")

	phones := r.Phones()
	phones[0], _ = engine.NewPhone("2222222222")

	assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
}

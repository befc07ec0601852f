package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Plain", "Ann", false},
		{"Keeps surrounding spaces", " Ann ", false},
		{"Empty", "", true},
		{"Whitespace only", " \t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := engine.NewName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrValidation)
				assert.ErrorIs(t, err, engine.ErrEmptyName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String(), "Name stores the original string")
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Ten digits", "0123456789", false},
		{"All zeros", "0000000000", false},
		{"Too short", "123456789", true},
		{"Too long", "12345678901", true},
		{"Letter inside", "12345a7890", true},
		{"Plus prefix", "+123456789", true},
		{"Spaces", "123 456 78", true},
		{"Non-ASCII digits", "١٢٣٤٥٦٧٨٩٠", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := engine.NewPhone(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrValidation)
				assert.ErrorIs(t, err, engine.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String(), "Phone must round-trip to the same string")
		})
	}
}

func TestPhone_EqualityByValue(t *testing.T) {
	a, err := engine.NewPhone("1234567890")
	require.NoError(t, err)
	b, err := engine.NewPhone("1234567890")
	require.NoError(t, err)

	assert.True(t, a == b)
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"Valid", "12.06.1990", time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC), false},
		{"Leap day in leap year", "29.02.2000", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"Leap day in non-leap year", "29.02.2001", time.Time{}, true},
		{"Invalid calendar date", "31.02.2000", time.Time{}, true},
		{"Month out of range", "01.13.2000", time.Time{}, true},
		{"ISO layout", "2000-02-01", time.Time{}, true},
		{"Slashes", "01/02/2000", time.Time{}, true},
		{"Two-digit year", "01.02.00", time.Time{}, true},
		{"Trailing text", "01.02.2000x", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.NewBirthday(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrValidation)
				assert.ErrorIs(t, err, engine.ErrInvalidBirthday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Date())
			assert.Equal(t, tt.input, b.String(), "Birthday renders back in DD.MM.YYYY")
		})
	}
}

func TestBirthdayFromDate_DropsClock(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	b := engine.BirthdayFromDate(time.Date(1990, 6, 12, 18, 30, 0, 0, loc))

	parsed, err := engine.NewBirthday("12.06.1990")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(b))
	assert.Equal(t, parsed, b)
}

package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Name identifies a contact. Always valid in memory - use NewName to construct.
type Name struct {
	value string
}

// NewName validates that the trimmed value is not empty.
// The original, untrimmed string is kept as the identity key.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// Phone is a ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone accepts exactly config.PhoneLength ASCII decimal digits.
func NewPhone(value string) (Phone, error) {
	if len(value) != config.PhoneLength {
		return Phone{}, fmt.Errorf("%q: %w", value, ErrInvalidPhone)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return Phone{}, fmt.Errorf("%q: %w", value, ErrInvalidPhone)
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY.
// The date is stored at midnight UTC; only year, month and day are meaningful.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value with config.DateFormatBirthday.
// time.Parse rejects both layout mismatches and out-of-range days (31.02.2000).
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthday, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%q: %w", value, ErrInvalidBirthday)
	}
	return Birthday{date: t}, nil
}

// BirthdayFromDate builds a Birthday from an already-parsed date (e.g. a vCard BDAY).
func BirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Date returns the stored calendar date.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday in the same DD.MM.YYYY layout it was parsed from.
func (b Birthday) String() string { return b.date.Format(config.DateFormatBirthday) }

// Equal reports whether both birthdays name the same calendar date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

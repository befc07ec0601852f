package engine

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record is a single contact: one name, an ordered list of phones and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's identity.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates and appends a phone.
// Duplicates are not checked here; the "add" command does that with FindPhone.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes the first phone equal to phone.
func (r *Record) RemovePhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	for i, existing := range r.phones {
		if existing == p {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("phone %s: %w", phone, ErrNotFound)
}

// EditPhone replaces the first phone whose string form equals oldPhone.
// When nothing matches the record is left as is; callers check existence first.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	for i, existing := range r.phones {
		if existing.String() != oldPhone {
			continue
		}
		p, err := NewPhone(newPhone)
		if err != nil {
			return err
		}
		r.phones[i] = p
		return nil
	}
	return nil
}

// FindPhone returns the phone whose string form equals phone.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	for _, existing := range r.phones {
		if existing.String() == phone {
			return existing, true
		}
	}
	return Phone{}, false
}

// SetBirthday parses and stores a birthday, overwriting any previous one.
func (r *Record) SetBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// SetBirthdayDate stores an already-validated birthday (used by the storage loader).
func (r *Record) SetBirthdayDate(b Birthday) {
	r.birthday = &b
}

// PhoneList joins the phones with config.PhoneSeparator.
func (r *Record) PhoneList() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, config.PhoneSeparator)
}

func (r *Record) String() string {
	return fmt.Sprintf(config.FormatRecord, r.name, r.PhoneList())
}

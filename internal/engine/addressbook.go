package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// UpcomingBirthday is a derived, non-persisted reminder entry.
type UpcomingBirthday struct {
	Name string

	// Date is the congratulation date: the occurrence, moved to Monday when it falls on a weekend.
	Date time.Time

	// CongratulationDate is Date rendered with config.DateFormatCongrats (YYYY.MM.DD).
	CongratulationDate string
}

// AddressBook is the name-keyed store of records.
// Names are unique and matched case-sensitively. Iteration follows insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r, failing with ErrDuplicate if its name is taken.
func (b *AddressBook) AddRecord(r *Record) error {
	key := r.Name().String()
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("%q: %w", key, ErrDuplicate)
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return nil
}

// Find looks up a record by exact name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes a record by exact name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays lists the records whose next birthday falls within
// config.UpcomingWindowDays of now's calendar date, both ends inclusive.
// Records without a birthday are skipped.
func (b *AddressBook) UpcomingBirthdays(now time.Time) []UpcomingBirthday {
	today := calendarDay(now)
	var upcoming []UpcomingBirthday

	for _, key := range b.order {
		bday, ok := b.records[key].Birthday()
		if !ok {
			continue
		}

		occurrence := nextOccurrence(today, bday.Date())
		delta := daysBetween(today, occurrence)
		if delta < 0 || delta > config.UpcomingWindowDays {
			continue
		}

		congrats := shiftWeekend(occurrence)
		upcoming = append(upcoming, UpcomingBirthday{
			Name:               key,
			Date:               congrats,
			CongratulationDate: congrats.Format(config.DateFormatCongrats),
		})
	}

	slog.Debug(config.MsgUpcomingBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyRecords, len(b.order),
		config.LogKeyCount, len(upcoming),
	)
	return upcoming
}

// calendarDay strips the clock and zone from t, keeping its local calendar date.
// Day arithmetic is then done in UTC so DST transitions cannot skew it.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// occurrenceIn returns the birthday's date in year.
// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
func occurrenceIn(year int, birthDate time.Time) time.Time {
	return time.Date(year, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
}

// nextOccurrence returns this year's occurrence, or next year's if it already passed.
// today must come from calendarDay.
func nextOccurrence(today, birthDate time.Time) time.Time {
	candidate := occurrenceIn(today.Year(), birthDate)
	if candidate.Before(today) {
		candidate = occurrenceIn(today.Year()+1, birthDate)
	}
	return candidate
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// shiftWeekend moves Saturday and Sunday to the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

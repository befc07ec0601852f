package engine_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// newBookWith builds a book with one record per name/birthday pair.
// An empty birthday leaves the record without one.
func newBookWith(t *testing.T, pairs ...[2]string) *engine.AddressBook {
	t.Helper()
	book := engine.NewAddressBook()
	for _, p := range pairs {
		r, err := engine.NewRecord(p[0])
		require.NoError(t, err)
		if p[1] != "" {
			require.NoError(t, r.SetBirthday(p[1]))
		}
		require.NoError(t, book.AddRecord(r))
	}
	return book
}

func TestGenerate_BirthdayToday(t *testing.T) {
	book := newBookWith(t, [2]string{"John Doe", "01.01.2000"})

	gen := &engine.CalendarGenerator{
		Clock: engine.FixedClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)),
	}

	icsData, count, err := gen.Generate(context.Background(), book, "")

	require.NoError(t, err)
	assert.Equal(t, 1, count, "Should identify one birthday today")

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR", "Should start with VCALENDAR")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: John Doe (25)", "Should contain the event summary with age")
	assert.NotContains(t, icsStr, "BEGIN:VALARM", "No alarm without a trigger")
}

func TestGenerate_EmptyBookReturnsStub(t *testing.T) {
	book := newBookWith(t, [2]string{"No Birthday", ""})

	gen := &engine.CalendarGenerator{Clock: engine.FixedClock(time.Now())}

	icsData, count, err := gen.Generate(context.Background(), book, "-P1D")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, config.StubVCalendar, string(icsData))
}

func TestGenerate_WithReminders(t *testing.T) {
	book := newBookWith(t, [2]string{"Alarm Test", "01.01.1990"})

	gen := &engine.CalendarGenerator{
		Clock: engine.FixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	icsData, _, err := gen.Generate(context.Background(), book, "-P1D")
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VALARM", "ICS should contain an alarm component")
	assert.Contains(t, icsStr, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, icsStr, "ACTION:DISPLAY", "Alarm action should be DISPLAY")
}

func TestGenerate_GeneratesYearRange(t *testing.T) {
	// Current date: Jan 1, 2025. Events for 2024, 2025 and 2026.
	book := newBookWith(t, [2]string{"Range Test", "31.12.1990"})

	gen := &engine.CalendarGenerator{
		Clock: engine.FixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	icsData, _, err := gen.Generate(context.Background(), book, "")
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"))
	for _, day := range []string{"20241231", "20251231", "20261231"} {
		assert.Contains(t, icsStr, day)
	}
}

func TestGenerate_SkipsYearsBeforeBirth(t *testing.T) {
	// Born this year: no event for the previous year.
	book := newBookWith(t, [2]string{"Newborn", "10.03.2025"})

	gen := &engine.CalendarGenerator{
		Clock: engine.FixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	icsData, _, err := gen.Generate(context.Background(), book, "")
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Newborn\r\n", "Birth year uses the summary without age")
}

func TestGenerate_FormatSummaryInjected(t *testing.T) {
	book := newBookWith(t, [2]string{"Ann", "12.06.1990"})

	gen := &engine.CalendarGenerator{
		Clock: engine.FixedClock(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("Party for %s at %d", name, age)
		},
	}

	icsData, count, err := gen.Generate(context.Background(), book, "")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, string(icsData), "SUMMARY:Party for Ann at 34")
}

func TestGenerate_CancelledContext(t *testing.T) {
	book := newBookWith(t, [2]string{"Ann", "12.06.1990"})
	gen := &engine.CalendarGenerator{Clock: engine.RealClock{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	icsData, _, err := gen.Generate(ctx, book, "")

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, icsData)
}

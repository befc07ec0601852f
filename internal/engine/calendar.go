package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/config"
)

// CalendarGenerator renders the address book's birthdays as an iCalendar feed.
type CalendarGenerator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary lets the caller inject catalog strings into event titles.
	// age is 0 when the event falls in the birth year.
	FormatSummary func(name string, age int) string
}

// Generate builds all-day events for the previous, current and next year of
// every record with a birthday. It returns the ICS bytes and the number of
// birthdays falling today.
func (g *CalendarGenerator) Generate(ctx context.Context, book *AddressBook, reminderTrigger string) ([]byte, int, error) {
	start := time.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Logic runs on the local calendar date; only DTSTAMP is UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	stats := struct{ processed, withBday, today int }{0, 0, 0}

	for _, r := range book.Records() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		stats.processed++

		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		stats.withBday++

		name := r.Name().String()
		events, isToday := g.createEvents(name, bday.Date(), reminderTrigger, now, eventUID(name, bday.Date()))
		if isToday {
			stats.today++
		}
		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	// A VCALENDAR without components is still returned as a valid stub.
	if len(cal.Children) == 0 {
		g.logSuccess(stats, start)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(stats, start)
	return buf.Bytes(), stats.today, nil
}

func (g *CalendarGenerator) logSuccess(stats struct{ processed, withBday, today int }, start time.Time) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyToday, stats.today),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}

// eventUID derives a stable identifier so re-exports update rather than duplicate events.
func eventUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// createEvents generates events for currentYear-1 .. currentYear+1,
// skipping years before the person was born.
func (g *CalendarGenerator) createEvents(name string, birthDate time.Time, reminderTrigger string, now time.Time, uidBase string) ([]*ical.Event, bool) {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	today := calendarDay(now)

	var events []*ical.Event
	isToday := false

	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birthDate.Year()
		summary := fmt.Sprintf(config.FallbackSummaryAge, name, age)
		if age == 0 {
			summary = fmt.Sprintf(config.FallbackSummary, name)
		}
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		eventDate := occurrenceIn(y, birthDate)
		if eventDate.Equal(today) {
			isToday = true
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events, isToday
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

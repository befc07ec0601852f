package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It decides "today" for the upcoming-birthday query and the calendar export.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
)

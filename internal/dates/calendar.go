// ABOUTME: Calendar derives the selectable date window and date keys.
// ABOUTME: All date math runs in one fixed time.Location, never the ambient locale.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeyLayout is the date key format used for completion tracking.
const KeyLayout = "2006-01-02"

// Window bounds of SelectableDates, as day offsets from today.
const (
	WindowStart = -1
	WindowEnd   = 6
)

// Calendar performs date math in a fixed location.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) {
		c.now = now
	}
}

// New creates a Calendar in loc. A nil loc means UTC.
func New(loc *time.Location, opts ...Option) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	c := &Calendar{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the calendar's reference location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Midnight returns the start of t's calendar day in the calendar's location.
func (c *Calendar) Midnight(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// Today returns midnight of the current day.
func (c *Calendar) Today() time.Time {
	return c.Midnight(c.now())
}

// SelectableDates returns yesterday through six days from today, inclusive.
// The window is computed from the clock at call time.
func (c *Calendar) SelectableDates() []time.Time {
	today := c.Today()
	days := make([]time.Time, 0, WindowEnd-WindowStart+1)
	for i := WindowStart; i <= WindowEnd; i++ {
		days = append(days, today.AddDate(0, 0, i))
	}
	return days
}

// WeekdayOf returns 0 (Sunday) through 6 (Saturday).
func (c *Calendar) WeekdayOf(t time.Time) int {
	return int(t.In(c.loc).Weekday())
}

// DateKey returns the YYYY-MM-DD key of t's calendar day.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.loc).Format(KeyLayout)
}

// ParseDateKey parses a strict YYYY-MM-DD key into midnight of that day.
func (c *Calendar) ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseDay resolves user input to a calendar day. Accepted forms:
// today, yesterday, tomorrow, a weekday name (next occurrence, today
// included), +N / -N day offsets, and YYYY-MM-DD.
func (c *Calendar) ParseDay(s string) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := c.Today()

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset %q", s)
		}
		return today.AddDate(0, 0, n), nil
	}

	if len(s) >= 3 && !strings.ContainsAny(s, "0123456789") {
		for i := 0; i < 7; i++ {
			d := today.AddDate(0, 0, i)
			if strings.HasPrefix(strings.ToLower(d.Weekday().String()), s) {
				return d, nil
			}
		}
	}

	return c.ParseDateKey(s)
}

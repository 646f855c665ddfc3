// ABOUTME: Tests for Calendar date math.
// ABOUTME: Uses a fixed clock and location so results are deterministic.
package dates

import (
	"testing"
	"time"
)

// 2025-01-15 is a Wednesday.
func fixedCalendar(t *testing.T, hour int) *Calendar {
	t.Helper()
	now := time.Date(2025, time.January, 15, hour, 30, 0, 0, time.UTC)
	return New(time.UTC, WithClock(func() time.Time { return now }))
}

func TestSelectableDates(t *testing.T) {
	cal := fixedCalendar(t, 10)
	days := cal.SelectableDates()

	if len(days) != 8 {
		t.Fatalf("len = %d, want 8", len(days))
	}
	want := []string{
		"2025-01-14", "2025-01-15", "2025-01-16", "2025-01-17",
		"2025-01-18", "2025-01-19", "2025-01-20", "2025-01-21",
	}
	for i, d := range days {
		if got := cal.DateKey(d); got != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, got, want[i])
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Errorf("days[%d] not normalized to midnight: %v", i, d)
		}
	}
}

func TestSelectableDatesAcrossMonthEnd(t *testing.T) {
	now := time.Date(2024, time.February, 28, 23, 59, 0, 0, time.UTC)
	cal := New(time.UTC, WithClock(func() time.Time { return now }))
	days := cal.SelectableDates()

	if got := cal.DateKey(days[2]); got != "2024-02-29" {
		t.Errorf("days[2] = %s, want 2024-02-29", got)
	}
	if got := cal.DateKey(days[7]); got != "2024-03-05" {
		t.Errorf("days[7] = %s, want 2024-03-05", got)
	}
}

func TestWeekdayOf(t *testing.T) {
	cal := New(time.UTC)
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2025, 1, 13, 23, 59, 0, 0, time.UTC), 1},
		{time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC), 6},
	}
	for _, tt := range tests {
		if got := cal.WeekdayOf(tt.date); got != tt.want {
			t.Errorf("WeekdayOf(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDateKeyIgnoresTimeOfDay(t *testing.T) {
	cal := New(time.UTC)
	morning := time.Date(2025, 3, 9, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC)

	if cal.DateKey(morning) != cal.DateKey(night) {
		t.Errorf("DateKey differs: %s vs %s", cal.DateKey(morning), cal.DateKey(night))
	}
	if cal.DateKey(morning) != "2025-03-09" {
		t.Errorf("DateKey = %s, want 2025-03-09", cal.DateKey(morning))
	}
}

func TestDateKeyUsesCalendarLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	cal := New(saoPaulo)

	// 01:00 UTC on the 10th is still the 9th in UTC-3.
	instant := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	if got := cal.DateKey(instant); got != "2025-03-09" {
		t.Errorf("DateKey = %s, want 2025-03-09", got)
	}
	if got := cal.WeekdayOf(instant); got != 0 {
		t.Errorf("WeekdayOf = %d, want 0 (Sunday)", got)
	}
}

func TestParseDateKey(t *testing.T) {
	cal := New(time.UTC)
	d, err := cal.ParseDateKey("2025-01-13")
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if cal.WeekdayOf(d) != 1 {
		t.Errorf("WeekdayOf = %d, want 1", cal.WeekdayOf(d))
	}

	for _, bad := range []string{"2025-1-13", "13/01/2025", "2025-02-30", ""} {
		if _, err := cal.ParseDateKey(bad); err == nil {
			t.Errorf("ParseDateKey(%q) expected error", bad)
		}
	}
}

func TestParseDay(t *testing.T) {
	cal := fixedCalendar(t, 10)
	tests := []struct {
		input string
		want  string
	}{
		{"", "2025-01-15"},
		{"today", "2025-01-15"},
		{"yesterday", "2025-01-14"},
		{"tomorrow", "2025-01-16"},
		{"+3", "2025-01-18"},
		{"-7", "2025-01-08"},
		{"wed", "2025-01-15"},
		{"monday", "2025-01-20"},
		{"2024-12-25", "2024-12-25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := cal.ParseDay(tt.input)
			if err != nil {
				t.Fatalf("ParseDay(%q) error: %v", tt.input, err)
			}
			if key := cal.DateKey(got); key != tt.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.input, key, tt.want)
			}
		})
	}

	if _, err := cal.ParseDay("someday"); err == nil {
		t.Error("expected error for unknown day")
	}
}

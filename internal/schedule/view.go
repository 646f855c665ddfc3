// ABOUTME: Derived views over the workout collection for a selected date.
// ABOUTME: Pure functions; nothing here mutates the collection.
package schedule

import (
	"slices"
	"time"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/models"
)

// ApplicableFor returns the workouts that repeat on date's weekday, in
// collection order.
func ApplicableFor(cal *dates.Calendar, collection []models.Workout, date time.Time) []models.Workout {
	weekday := cal.WeekdayOf(date)
	var out []models.Workout
	for i := range collection {
		if collection[i].RepeatsOn(weekday) {
			out = append(out, collection[i])
		}
	}
	return out
}

// IsCompletedOn reports whether w was marked done on date.
func IsCompletedOn(cal *dates.Calendar, w *models.Workout, date time.Time) bool {
	return w.CompletedOnKey(cal.DateKey(date))
}

// SortedRepeatDays returns an ascending copy of w's repeat days.
func SortedRepeatDays(w *models.Workout) []int {
	days := slices.Clone(w.RepeatDays)
	slices.Sort(days)
	return days
}

// Entry is one applicable workout with its completion flag for the day.
type Entry struct {
	Workout   models.Workout   `json:"workout"`
	Completed bool             `json:"completed"`
	Media     models.MediaKind `json:"media"`
	Days      []int            `json:"days"`
}

// Day is everything the presentation layer needs for one selected date.
type Day struct {
	Date    time.Time `json:"date"`
	DateKey string    `json:"date_key"`
	Weekday int       `json:"weekday"`
	Entries []Entry   `json:"entries"`
	Done    int       `json:"done"`
	Total   int       `json:"total"`
}

// DayFor builds the Day view for date.
func DayFor(cal *dates.Calendar, collection []models.Workout, date time.Time) Day {
	date = cal.Midnight(date)
	day := Day{
		Date:    date,
		DateKey: cal.DateKey(date),
		Weekday: cal.WeekdayOf(date),
		Entries: []Entry{},
	}
	for _, w := range ApplicableFor(cal, collection, date) {
		done := w.CompletedOnKey(day.DateKey)
		day.Entries = append(day.Entries, Entry{
			Workout:   w.Clone(),
			Completed: done,
			Media:     models.ClassifyMedia(w.MediaURL),
			Days:      SortedRepeatDays(&w),
		})
		if done {
			day.Done++
		}
	}
	day.Total = len(day.Entries)
	return day
}

// Week builds one Day per date in window, usually the selectable dates.
func Week(cal *dates.Calendar, collection []models.Workout, window []time.Time) []Day {
	days := make([]Day, 0, len(window))
	for _, d := range window {
		days = append(days, DayFor(cal, collection, d))
	}
	return days
}

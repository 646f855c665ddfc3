// ABOUTME: Tests for the recurrence view derivations.
// ABOUTME: Covers weekday filtering, completion lookup, and day summaries.
package schedule

import (
	"slices"
	"testing"
	"time"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/models"
)

var (
	monday  = time.Date(2025, time.January, 13, 9, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, time.January, 14, 18, 0, 0, 0, time.UTC)
)

func workout(id string, days ...int) models.Workout {
	return models.Workout{ID: id, Title: id, RepeatDays: days, CompletedOn: []string{}}
}

func TestApplicableFor(t *testing.T) {
	cal := dates.New(time.UTC)
	collection := []models.Workout{
		workout("a", 1, 3, 5),
		workout("b", 2),
		workout("c", 5, 1),
		workout("d", 0, 6),
	}

	got := ApplicableFor(cal, collection, monday)
	var ids []string
	for _, w := range got {
		ids = append(ids, w.ID)
	}
	if !slices.Equal(ids, []string{"a", "c"}) {
		t.Errorf("ApplicableFor(monday) = %v, want [a c]", ids)
	}

	for _, w := range got {
		if !w.RepeatsOn(cal.WeekdayOf(monday)) {
			t.Errorf("workout %s does not repeat on monday", w.ID)
		}
	}
}

func TestApplicableForEveryWeekday(t *testing.T) {
	cal := dates.New(time.UTC)
	collection := []models.Workout{
		workout("a", 1, 3, 5),
		workout("b", 2),
		workout("c", 0, 1, 2, 3, 4, 5, 6),
	}
	sunday := time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		date := sunday.AddDate(0, 0, i)
		got := ApplicableFor(cal, collection, date)
		for _, w := range collection {
			want := w.RepeatsOn(i)
			has := slices.ContainsFunc(got, func(g models.Workout) bool { return g.ID == w.ID })
			if want != has {
				t.Errorf("weekday %d workout %s: included=%v, want %v", i, w.ID, has, want)
			}
		}
	}
}

func TestApplicableForEmpty(t *testing.T) {
	cal := dates.New(time.UTC)
	if got := ApplicableFor(cal, nil, monday); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestIsCompletedOn(t *testing.T) {
	cal := dates.New(time.UTC)
	w := workout("a", 1)
	w.CompletedOn = []string{"2025-01-13"}

	if !IsCompletedOn(cal, &w, monday) {
		t.Error("expected completed on monday")
	}
	if !IsCompletedOn(cal, &w, monday.Add(14*time.Hour)) {
		t.Error("time of day should not matter")
	}
	if IsCompletedOn(cal, &w, monday.AddDate(0, 0, 7)) {
		t.Error("should not be completed the following monday")
	}
}

func TestSortedRepeatDaysDoesNotMutate(t *testing.T) {
	w := workout("a", 5, 1, 3)
	got := SortedRepeatDays(&w)

	if !slices.Equal(got, []int{1, 3, 5}) {
		t.Errorf("SortedRepeatDays = %v, want [1 3 5]", got)
	}
	if !slices.Equal(w.RepeatDays, []int{5, 1, 3}) {
		t.Errorf("RepeatDays mutated: %v", w.RepeatDays)
	}
}

func TestDayFor(t *testing.T) {
	cal := dates.New(time.UTC)
	a := workout("a", 1, 3)
	a.CompletedOn = []string{"2025-01-13"}
	a.MediaURL = "file:///clip.MP4"
	collection := []models.Workout{a, workout("b", 1), workout("c", 2)}

	day := DayFor(cal, collection, monday)

	if day.DateKey != "2025-01-13" {
		t.Errorf("DateKey = %s", day.DateKey)
	}
	if day.Weekday != 1 {
		t.Errorf("Weekday = %d, want 1", day.Weekday)
	}
	if day.Total != 2 || day.Done != 1 {
		t.Errorf("Done/Total = %d/%d, want 1/2", day.Done, day.Total)
	}
	if !day.Entries[0].Completed || day.Entries[1].Completed {
		t.Errorf("completion flags wrong: %+v", day.Entries)
	}
	if day.Entries[0].Media != models.MediaVideo {
		t.Errorf("Media = %s, want video", day.Entries[0].Media)
	}

	empty := DayFor(cal, collection, tuesday.AddDate(0, 0, 3))
	if empty.Total != 0 || empty.Entries == nil {
		t.Errorf("expected empty non-nil entries, got %+v", empty)
	}
}

func TestDayForIsPure(t *testing.T) {
	cal := dates.New(time.UTC)
	collection := []models.Workout{workout("a", 1), workout("b", 1, 2)}

	first := DayFor(cal, collection, monday)
	second := DayFor(cal, collection, monday)

	if first.Total != second.Total || first.DateKey != second.DateKey {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	first.Entries[0].Workout.CompletedOn = append(first.Entries[0].Workout.CompletedOn, "x")
	if len(collection[0].CompletedOn) != 0 {
		t.Error("view entries alias the collection")
	}
}

func TestWeek(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	cal := dates.New(time.UTC, dates.WithClock(func() time.Time { return now }))
	collection := []models.Workout{workout("a", 1, 3, 5)}

	week := Week(cal, collection, cal.SelectableDates())
	if len(week) != 8 {
		t.Fatalf("len = %d, want 8", len(week))
	}
	// 14th Tue, 15th Wed, 17th Fri, 20th Mon
	totals := []int{0, 1, 0, 1, 0, 0, 1, 0}
	for i, d := range week {
		if d.Total != totals[i] {
			t.Errorf("%s total = %d, want %d", d.DateKey, d.Total, totals[i])
		}
	}
}

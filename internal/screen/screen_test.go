// ABOUTME: Tests for the screen view model.
// ABOUTME: Verifies the day view follows store mutations and date selection.
package screen

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/storage"
	"github.com/harperreed/routine/internal/store"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// Wednesday 2025-01-15, mid-morning.
var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func setupTestScreen(t *testing.T) (*Screen, *store.Store, *dates.Calendar) {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	s := store.New(storage.NewMemoryKV(), store.WithLogger(logger))
	s.Load(context.Background())
	cal := dates.New(time.UTC, dates.WithClock(func() time.Time { return fixedNow }))

	sc := New(s, cal)
	t.Cleanup(sc.Close)
	return sc, s, cal
}

func TestNewSelectsToday(t *testing.T) {
	sc, _, _ := setupTestScreen(t)

	if got := sc.View().DateKey; got != "2025-01-15" {
		t.Errorf("expected today selected, got %s", got)
	}
	if !sc.Selected().Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected midnight, got %v", sc.Selected())
	}
}

func TestViewFollowsMutations(t *testing.T) {
	ctx := context.Background()
	sc, s, _ := setupTestScreen(t)

	w, err := s.Create(ctx, models.WorkoutInput{Title: "Supino Reto", Sets: "4", Reps: "12", RepeatDays: []int{1, 3, 5}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	view := sc.View()
	if view.Total != 1 || view.Entries[0].Workout.ID != w.ID {
		t.Fatalf("view not refreshed after create: %+v", view)
	}
	if view.Done != 0 {
		t.Errorf("expected 0 done, got %d", view.Done)
	}

	s.ToggleCompletion(ctx, w.ID, "2025-01-15")
	view = sc.View()
	if !view.Entries[0].Completed || view.Done != 1 {
		t.Errorf("view not refreshed after toggle: %+v", view)
	}

	s.Delete(ctx, w.ID)
	if sc.View().Total != 0 {
		t.Error("view not refreshed after delete")
	}
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	sc, s, _ := setupTestScreen(t)
	s.Create(ctx, models.WorkoutInput{Title: "Supino Reto", RepeatDays: []int{1, 3, 5}})

	tuesday := time.Date(2025, 1, 14, 18, 0, 0, 0, time.UTC)
	sc.Select(tuesday)
	view := sc.View()
	if view.DateKey != "2025-01-14" || view.Total != 0 {
		t.Errorf("expected empty Tuesday, got %+v", view)
	}

	sc.Select(tuesday.AddDate(0, 0, 3))
	if got := sc.View(); got.DateKey != "2025-01-17" || got.Total != 1 {
		t.Errorf("expected workout on Friday, got %+v", got)
	}
}

func TestDates(t *testing.T) {
	sc, _, _ := setupTestScreen(t)

	got := sc.Dates()
	if len(got) != 8 {
		t.Fatalf("expected 8 dates, got %d", len(got))
	}
	if got[0].Format(dates.KeyLayout) != "2025-01-14" {
		t.Errorf("expected window to start yesterday, got %s", got[0].Format(dates.KeyLayout))
	}
}

func TestCloseStopsUpdates(t *testing.T) {
	ctx := context.Background()
	sc, s, _ := setupTestScreen(t)
	sc.Close()

	s.Create(ctx, models.WorkoutInput{Title: "Squat", RepeatDays: []int{3}})
	if sc.View().Total != 0 {
		t.Error("view changed after Close")
	}
}

func TestDatesFixedAtCreation(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	s := store.New(storage.NewMemoryKV(), store.WithLogger(logger))
	now := fixedNow
	cal := dates.New(time.UTC, dates.WithClock(func() time.Time { return now }))

	sc := New(s, cal)
	defer sc.Close()

	now = now.AddDate(0, 0, 2)
	got := sc.Dates()
	if got[0].Format(dates.KeyLayout) != "2025-01-14" {
		t.Errorf("window moved with the clock: starts %s", got[0].Format(dates.KeyLayout))
	}
	week := sc.Week()
	if len(week) != 8 || week[1].DateKey != "2025-01-15" {
		t.Errorf("unexpected week: %d days starting %s", len(week), week[0].DateKey)
	}

	got[0] = time.Time{}
	if sc.Dates()[0].IsZero() {
		t.Error("Dates exposed its internal slice")
	}
}

func TestNewSeesExistingWorkouts(t *testing.T) {
	ctx := context.Background()
	logger, _ := logtest.NewNullLogger()
	s := store.New(storage.NewMemoryKV(), store.WithLogger(logger))
	s.Create(ctx, models.WorkoutInput{Title: "Supino Reto", RepeatDays: []int{3}})
	cal := dates.New(time.UTC, dates.WithClock(func() time.Time { return fixedNow }))

	sc := New(s, cal)
	defer sc.Close()

	if sc.View().Total != 1 {
		t.Errorf("expected existing workout in view, got %+v", sc.View())
	}
}

func TestDayAndWeekFollowMutations(t *testing.T) {
	ctx := context.Background()
	sc, s, _ := setupTestScreen(t)

	w, _ := s.Create(ctx, models.WorkoutInput{Title: "Remada", RepeatDays: []int{2, 4}})
	s.ToggleCompletion(ctx, w.ID, "2025-01-16")

	thursday := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	day := sc.Day(thursday)
	if day.Total != 1 || day.Done != 1 {
		t.Errorf("Day(thursday) = %+v, want 1/1", day)
	}
	if sc.View().DateKey != "2025-01-15" {
		t.Error("Day changed the selection")
	}

	var total int
	for _, d := range sc.Week() {
		total += d.Total
	}
	if total != 3 {
		t.Errorf("expected Remada on Tue 14, Thu 16 and Tue 21, got %d", total)
	}
}

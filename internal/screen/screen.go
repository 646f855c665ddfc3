// ABOUTME: Screen holds the selected date and the derived day view.
// ABOUTME: The view is recomputed after every store mutation and date selection.
package screen

import (
	"slices"
	"sync"
	"time"

	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/schedule"
	"github.com/harperreed/routine/internal/store"
)

// Screen is the surface a presentation layer reads from. The selectable
// date window is fixed when the Screen is created.
type Screen struct {
	cal    *dates.Calendar
	dates  []time.Time
	cancel func()

	mu         sync.Mutex
	selected   time.Time
	collection []models.Workout
	view       schedule.Day
}

// New creates a Screen over s with today selected.
func New(s *store.Store, cal *dates.Calendar) *Screen {
	sc := &Screen{
		cal:      cal,
		dates:    cal.SelectableDates(),
		selected: cal.Today(),
	}

	// Subscribe before reading so no mutation falls between the two.
	sc.cancel = s.Subscribe(sc.onChange)

	sc.mu.Lock()
	sc.collection = s.Workouts()
	sc.recompute()
	sc.mu.Unlock()
	return sc
}

// Select changes the selected date.
func (sc *Screen) Select(date time.Time) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.selected = sc.cal.Midnight(date)
	sc.recompute()
}

// Selected returns the selected date at midnight.
func (sc *Screen) Selected() time.Time {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.selected
}

// View returns the day view for the selected date.
func (sc *Screen) View() schedule.Day {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.view
}

// Day returns the day view for date without changing the selection.
func (sc *Screen) Day(date time.Time) schedule.Day {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return schedule.DayFor(sc.cal, sc.collection, date)
}

// Week returns one day view per selectable date.
func (sc *Screen) Week() []schedule.Day {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return schedule.Week(sc.cal, sc.collection, sc.dates)
}

// Dates returns the selectable date window.
func (sc *Screen) Dates() []time.Time {
	return slices.Clone(sc.dates)
}

// Close stops following store mutations.
func (sc *Screen) Close() {
	if sc.cancel != nil {
		sc.cancel()
		sc.cancel = nil
	}
}

func (sc *Screen) onChange(collection []models.Workout) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.collection = collection
	sc.recompute()
}

func (sc *Screen) recompute() {
	sc.view = schedule.DayFor(sc.cal, sc.collection, sc.selected)
}

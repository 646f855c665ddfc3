// ABOUTME: Workout model for recurring exercise entries.
// ABOUTME: Workouts recur on weekdays and track completion per calendar date.
package models

import (
	"slices"
	"strconv"
	"strings"
)

// Workout is a recurring exercise entry. JSON names match the stored snapshot.
type Workout struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Sets        string   `json:"sets" yaml:"sets"`
	Reps        string   `json:"reps" yaml:"reps"`
	RepeatDays  []int    `json:"repeatDays" yaml:"repeat_days"`
	MediaURL    string   `json:"mediaUrl" yaml:"media_url"`
	CompletedOn []string `json:"completedOn" yaml:"completed_on"`
}

// WorkoutInput holds the user-editable fields of a workout.
type WorkoutInput struct {
	Title      string
	Sets       string
	Reps       string
	RepeatDays []int
	MediaURL   string
}

// Apply replaces the editable fields. ID and CompletedOn are left alone.
func (w *Workout) Apply(in WorkoutInput) {
	in = in.Normalize()
	w.Title = in.Title
	w.Sets = in.Sets
	w.Reps = in.Reps
	w.RepeatDays = in.RepeatDays
	w.MediaURL = in.MediaURL
}

// Input returns the editable fields of the workout, e.g. to prefill an edit.
func (w *Workout) Input() WorkoutInput {
	return WorkoutInput{
		Title:      w.Title,
		Sets:       w.Sets,
		Reps:       w.Reps,
		RepeatDays: slices.Clone(w.RepeatDays),
		MediaURL:   w.MediaURL,
	}
}

// Clone returns a deep copy.
func (w *Workout) Clone() Workout {
	c := *w
	c.RepeatDays = slices.Clone(w.RepeatDays)
	c.CompletedOn = slices.Clone(w.CompletedOn)
	if c.CompletedOn == nil {
		c.CompletedOn = []string{}
	}
	if c.RepeatDays == nil {
		c.RepeatDays = []int{}
	}
	return c
}

// RepeatsOn reports whether weekday is one of the workout's repeat days.
func (w *Workout) RepeatsOn(weekday int) bool {
	return slices.Contains(w.RepeatDays, weekday)
}

// CompletedOnKey reports whether dateKey is in the completion set.
func (w *Workout) CompletedOnKey(dateKey string) bool {
	return slices.Contains(w.CompletedOn, dateKey)
}

// ToggleCompletion removes dateKey from the completion set if present and
// adds it otherwise. It returns true when the key is present afterwards.
func (w *Workout) ToggleCompletion(dateKey string) bool {
	if i := slices.Index(w.CompletedOn, dateKey); i >= 0 {
		w.CompletedOn = slices.Delete(slices.Clone(w.CompletedOn), i, i+1)
		return false
	}
	w.CompletedOn = append(slices.Clone(w.CompletedOn), dateKey)
	return true
}

// Summary renders sets and reps the way the workout card shows them:
// "4x12" when both are set, otherwise whichever one is present.
func (w *Workout) Summary() string {
	switch {
	case w.Sets != "" && w.Reps != "":
		return w.Sets + "x" + w.Reps
	case w.Sets != "":
		return w.Sets
	default:
		return w.Reps
	}
}

// Normalize trims text fields and drops duplicate repeat days, keeping the
// first occurrence of each.
func (in WorkoutInput) Normalize() WorkoutInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Sets = strings.TrimSpace(in.Sets)
	in.Reps = strings.TrimSpace(in.Reps)
	in.MediaURL = strings.TrimSpace(in.MediaURL)

	days := make([]int, 0, len(in.RepeatDays))
	for _, d := range in.RepeatDays {
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	in.RepeatDays = days
	return in
}

// Validate checks the input before a create or update.
func (in WorkoutInput) Validate() error {
	in = in.Normalize()
	if in.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if len(in.RepeatDays) == 0 {
		return &ValidationError{Field: "repeatDays", Message: "at least one repeat day is required"}
	}
	for _, d := range in.RepeatDays {
		if d < 0 || d > 6 {
			return &ValidationError{Field: "repeatDays", Message: "repeat day " + strconv.Itoa(d) + " is out of range 0-6"}
		}
	}
	return nil
}

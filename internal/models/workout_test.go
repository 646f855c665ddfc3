// ABOUTME: Tests for the Workout model.
// ABOUTME: Covers input normalization, validation rules, and completion toggling.
package models

import (
	"errors"
	"slices"
	"testing"
)

func newTestWorkout(in WorkoutInput) *Workout {
	w := &Workout{ID: "w1", CompletedOn: []string{}}
	w.Apply(in)
	return w
}

func TestApplyNormalizesInput(t *testing.T) {
	w := newTestWorkout(WorkoutInput{
		Title:      "  Supino Reto ",
		Sets:       " 4",
		Reps:       "12 ",
		RepeatDays: []int{1, 3, 5, 3},
	})

	if w.Title != "Supino Reto" {
		t.Errorf("Title = %q, want %q", w.Title, "Supino Reto")
	}
	if w.Sets != "4" || w.Reps != "12" {
		t.Errorf("Sets/Reps = %q/%q, want 4/12", w.Sets, w.Reps)
	}
	if w.CompletedOn == nil || len(w.CompletedOn) != 0 {
		t.Errorf("CompletedOn = %v, want empty non-nil", w.CompletedOn)
	}
	if !slices.Equal(w.RepeatDays, []int{1, 3, 5}) {
		t.Errorf("RepeatDays = %v, want [1 3 5]", w.RepeatDays)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     WorkoutInput
		wantField string
	}{
		{"valid", WorkoutInput{Title: "Squat", RepeatDays: []int{1}}, ""},
		{"valid with counts", WorkoutInput{Title: "Squat", Sets: "4", Reps: "10", RepeatDays: []int{0, 6}}, ""},
		{"empty title", WorkoutInput{Title: "", RepeatDays: []int{1}}, "title"},
		{"blank title", WorkoutInput{Title: "   ", RepeatDays: []int{1}}, "title"},
		{"no days", WorkoutInput{Title: "Squat"}, "repeatDays"},
		{"empty days", WorkoutInput{Title: "Squat", RepeatDays: []int{}}, "repeatDays"},
		{"day too high", WorkoutInput{Title: "Squat", RepeatDays: []int{7}}, "repeatDays"},
		{"negative day", WorkoutInput{Title: "Squat", RepeatDays: []int{-1}}, "repeatDays"},
		{"rep range", WorkoutInput{Title: "Squat", Sets: "3", Reps: "8-12", RepeatDays: []int{1}}, ""},
		{"pyramid reps", WorkoutInput{Title: "Squat", Reps: "10/8/6", RepeatDays: []int{1}}, ""},
		{"worded sets", WorkoutInput{Title: "Plank", Sets: "até a falha", RepeatDays: []int{1}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNormalizeDropsDuplicateDays(t *testing.T) {
	in := WorkoutInput{Title: "x", RepeatDays: []int{5, 1, 5, 3, 1}}.Normalize()
	if !slices.Equal(in.RepeatDays, []int{5, 1, 3}) {
		t.Errorf("RepeatDays = %v, want [5 1 3]", in.RepeatDays)
	}
}

func TestToggleCompletionIsInvolution(t *testing.T) {
	w := newTestWorkout(WorkoutInput{Title: "x", RepeatDays: []int{1}})
	w.CompletedOn = []string{"2025-01-06"}
	before := slices.Clone(w.CompletedOn)

	if !w.ToggleCompletion("2025-01-13") {
		t.Error("first toggle should add the key")
	}
	if !w.CompletedOnKey("2025-01-13") {
		t.Error("expected key to be present")
	}
	if w.ToggleCompletion("2025-01-13") {
		t.Error("second toggle should remove the key")
	}
	if !slices.Equal(w.CompletedOn, before) {
		t.Errorf("CompletedOn = %v, want %v", w.CompletedOn, before)
	}
}

func TestToggleCompletionDoesNotAlias(t *testing.T) {
	w := newTestWorkout(WorkoutInput{Title: "x", RepeatDays: []int{1}})
	w.CompletedOn = []string{"2025-01-06", "2025-01-13"}
	clone := w.Clone()

	w.ToggleCompletion("2025-01-06")

	if !slices.Equal(clone.CompletedOn, []string{"2025-01-06", "2025-01-13"}) {
		t.Errorf("clone mutated: %v", clone.CompletedOn)
	}
}

func TestApplyPreservesIDAndCompletion(t *testing.T) {
	w := newTestWorkout(WorkoutInput{Title: "old", RepeatDays: []int{1}})
	w.CompletedOn = []string{"2025-01-06"}
	id := w.ID

	w.Apply(WorkoutInput{Title: "new", Sets: "3", RepeatDays: []int{2}, MediaURL: "https://x/y.gif"})

	if w.ID != id {
		t.Errorf("ID changed: %s -> %s", id, w.ID)
	}
	if !slices.Equal(w.CompletedOn, []string{"2025-01-06"}) {
		t.Errorf("CompletedOn = %v", w.CompletedOn)
	}
	if w.Title != "new" || w.Sets != "3" || w.MediaURL != "https://x/y.gif" {
		t.Errorf("fields not applied: %+v", w)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		sets, reps, want string
	}{
		{"4", "12", "4x12"},
		{"4", "", "4"},
		{"", "12", "12"},
		{"", "", ""},
	}
	for _, tt := range tests {
		w := Workout{Sets: tt.sets, Reps: tt.reps}
		if got := w.Summary(); got != tt.want {
			t.Errorf("Summary(%q, %q) = %q, want %q", tt.sets, tt.reps, got, tt.want)
		}
	}
}

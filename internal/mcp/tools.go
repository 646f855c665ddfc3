// ABOUTME: MCP tool implementations for recurring workouts.
// ABOUTME: Provides create, update, delete, completion toggling, and day views.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workout",
		Description: "Create a recurring workout scheduled on one or more weekdays",
	}, s.handleCreateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Edit a workout's title, volume, repeat days, or media. Completion history is kept",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_completion",
		Description: "Mark a workout done on a date, or undo it if already done",
	}, s.handleToggleCompletion)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List all workouts, optionally only those repeating on a weekday",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its repeat days and completion history",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the workouts scheduled on a date with their completion state. The date becomes the selected date; omit it to see the selected date again (today at start)",
	}, s.handleGetDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_dates",
		Description: "List the selectable dates: yesterday through six days ahead",
	}, s.handleListDates)
}

// Tool input/output types

type createWorkoutInput struct {
	Title    string `json:"title" jsonschema:"Workout title, e.g. Supino Reto"`
	Days     string `json:"days" jsonschema:"Comma-separated weekdays (mon,wed,fri) or daily, weekdays, weekends"`
	Sets     string `json:"sets,omitempty" jsonschema:"Sets, e.g. 4"`
	Reps     string `json:"reps,omitempty" jsonschema:"Reps per set, e.g. 12 or 8-12"`
	MediaURL string `json:"media_url,omitempty" jsonschema:"Image or video URI for the exercise"`
}

type updateWorkoutInput struct {
	ID         string `json:"id" jsonschema:"Workout ID or prefix"`
	Title      string `json:"title,omitempty" jsonschema:"New title"`
	Days       string `json:"days,omitempty" jsonschema:"New comma-separated repeat days"`
	Sets       string `json:"sets,omitempty" jsonschema:"New sets"`
	Reps       string `json:"reps,omitempty" jsonschema:"New reps per set"`
	MediaURL   string `json:"media_url,omitempty" jsonschema:"New media URI"`
	ClearSets  bool   `json:"clear_sets,omitempty" jsonschema:"Remove the sets value"`
	ClearReps  bool   `json:"clear_reps,omitempty" jsonschema:"Remove the reps value"`
	ClearMedia bool   `json:"clear_media,omitempty" jsonschema:"Remove the attached media"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type toggleCompletionInput struct {
	ID   string `json:"id" jsonschema:"Workout ID or prefix"`
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD, today, yesterday, tomorrow, or weekday name), defaults to today"`
}

type listWorkoutsInput struct {
	Day string `json:"day,omitempty" jsonschema:"Only workouts repeating on this weekday"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD, today, yesterday, tomorrow, +N, or weekday name), defaults to the selected date"`
}

type workoutOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Sets        string   `json:"sets"`
	Reps        string   `json:"reps"`
	RepeatDays  []int    `json:"repeat_days"`
	Days        string   `json:"days"`
	MediaURL    string   `json:"media_url,omitempty"`
	Media       string   `json:"media"`
	CompletedOn []string `json:"completed_on"`
}

type workoutResult struct {
	Workout workoutOutput `json:"workout"`
	Message string        `json:"message"`
}

type listWorkoutsOutput struct {
	Workouts []workoutOutput `json:"workouts"`
	Count    int             `json:"count"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type toggleOutput struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Message   string `json:"message"`
}

type entryOutput struct {
	Workout   workoutOutput `json:"workout"`
	Completed bool          `json:"completed"`
}

type dayOutput struct {
	Date    string        `json:"date"`
	Weekday string        `json:"weekday"`
	Entries []entryOutput `json:"entries"`
	Done    int           `json:"done"`
	Total   int           `json:"total"`
}

type dateOutput struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Today   bool   `json:"today"`
}

type listDatesOutput struct {
	Dates []dateOutput `json:"dates"`
}

// Tool handlers

func (s *Server) handleCreateWorkout(ctx context.Context, req *mcp.CallToolRequest, input createWorkoutInput) (*mcp.CallToolResult, workoutResult, error) {
	days, err := models.ParseWeekdays(input.Days)
	if err != nil {
		return nil, workoutResult{}, err
	}

	w, err := s.store.Create(ctx, models.WorkoutInput{
		Title:      input.Title,
		Sets:       input.Sets,
		Reps:       input.Reps,
		RepeatDays: days,
		MediaURL:   input.MediaURL,
	})
	if err != nil {
		return nil, workoutResult{}, err
	}

	return nil, workoutResult{
		Workout: toWorkoutOutput(w),
		Message: fmt.Sprintf("Created workout %s", w.Title),
	}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, workoutResult, error) {
	s.refresh(ctx)
	w, err := s.store.Resolve(input.ID)
	if err != nil {
		return nil, workoutResult{}, err
	}

	in := w.Input()
	if input.Title != "" {
		in.Title = input.Title
	}
	if input.Days != "" {
		days, err := models.ParseWeekdays(input.Days)
		if err != nil {
			return nil, workoutResult{}, err
		}
		in.RepeatDays = days
	}
	if input.Sets != "" {
		in.Sets = input.Sets
	}
	if input.Reps != "" {
		in.Reps = input.Reps
	}
	if input.MediaURL != "" {
		in.MediaURL = input.MediaURL
	}
	if input.ClearSets {
		in.Sets = ""
	}
	if input.ClearReps {
		in.Reps = ""
	}
	if input.ClearMedia {
		in.MediaURL = ""
	}

	updated, err := s.store.Update(ctx, w.ID, in)
	if err != nil {
		return nil, workoutResult{}, err
	}

	return nil, workoutResult{
		Workout: toWorkoutOutput(updated),
		Message: fmt.Sprintf("Updated workout %s", updated.Title),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.refresh(ctx)
	w, err := s.store.Resolve(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	s.store.Delete(ctx, w.ID)
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout %s", w.Title)}, nil
}

func (s *Server) handleToggleCompletion(ctx context.Context, req *mcp.CallToolRequest, input toggleCompletionInput) (*mcp.CallToolResult, toggleOutput, error) {
	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, toggleOutput{}, err
	}
	s.refresh(ctx)
	w, err := s.store.Resolve(input.ID)
	if err != nil {
		return nil, toggleOutput{}, err
	}

	key := s.cal.DateKey(date)
	toggled, found := s.store.ToggleCompletion(ctx, w.ID, key)
	if !found {
		return nil, toggleOutput{}, &models.NotFoundError{ID: w.ID}
	}

	completed := toggled.CompletedOnKey(key)
	msg := fmt.Sprintf("Marked %s done on %s", toggled.Title, key)
	if !completed {
		msg = fmt.Sprintf("Marked %s not done on %s", toggled.Title, key)
	}
	return nil, toggleOutput{ID: toggled.ID, Date: key, Completed: completed, Message: msg}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	s.refresh(ctx)
	workouts := s.store.Workouts()

	out := listWorkoutsOutput{Workouts: []workoutOutput{}}
	if input.Day != "" {
		day, err := models.ParseWeekday(input.Day)
		if err != nil {
			return nil, listWorkoutsOutput{}, err
		}
		for i := range workouts {
			if workouts[i].RepeatsOn(day) {
				out.Workouts = append(out.Workouts, toWorkoutOutput(workouts[i]))
			}
		}
	} else {
		for _, w := range workouts {
			out.Workouts = append(out.Workouts, toWorkoutOutput(w))
		}
	}
	out.Count = len(out.Workouts)
	return nil, out, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.refresh(ctx)
	w, err := s.store.Resolve(input.ID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, toWorkoutOutput(w), nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, dayOutput, error) {
	if input.Date != "" {
		date, err := s.cal.ParseDay(input.Date)
		if err != nil {
			return nil, dayOutput{}, err
		}
		s.screen.Select(date)
	}
	s.refresh(ctx)
	return nil, toDayOutput(s.screen.View()), nil
}

func (s *Server) handleListDates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, listDatesOutput, error) {
	todayKey := s.cal.DateKey(s.cal.Today())

	out := listDatesOutput{Dates: []dateOutput{}}
	for _, d := range s.screen.Dates() {
		key := s.cal.DateKey(d)
		out.Dates = append(out.Dates, dateOutput{
			Date:    key,
			Weekday: models.WeekdayNames[s.cal.WeekdayOf(d)],
			Today:   key == todayKey,
		})
	}
	return nil, out, nil
}

func (s *Server) parseDate(value string) (time.Time, error) {
	if value == "" {
		return s.cal.Today(), nil
	}
	return s.cal.ParseDay(value)
}

func toWorkoutOutput(w models.Workout) workoutOutput {
	days := schedule.SortedRepeatDays(&w)
	return workoutOutput{
		ID:          w.ID,
		Title:       w.Title,
		Sets:        w.Sets,
		Reps:        w.Reps,
		RepeatDays:  days,
		Days:        models.FormatWeekdays(days),
		MediaURL:    w.MediaURL,
		Media:       string(models.ClassifyMedia(w.MediaURL)),
		CompletedOn: w.Clone().CompletedOn,
	}
}

func toDayOutput(day schedule.Day) dayOutput {
	out := dayOutput{
		Date:    day.DateKey,
		Weekday: models.WeekdayNames[day.Weekday],
		Entries: []entryOutput{},
		Done:    day.Done,
		Total:   day.Total,
	}
	for _, e := range day.Entries {
		out.Entries = append(out.Entries, entryOutput{
			Workout:   toWorkoutOutput(e.Workout),
			Completed: e.Completed,
		})
	}
	return out
}

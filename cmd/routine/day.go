// ABOUTME: CLI commands for the day view: day, week, done, and dates.
// ABOUTME: Reads day views through a screen over the workout store.
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/schedule"
	"github.com/harperreed/routine/internal/screen"
	"github.com/spf13/cobra"
)

var doneDate string

var dayCmd = &cobra.Command{
	Use:     "day [date]",
	Aliases: []string{"today", "d"},
	Short:   "Show the workouts scheduled on a date",
	Long: `Show the workouts scheduled on a date with check marks for the ones done.

The date defaults to today and accepts YYYY-MM-DD, today, yesterday,
tomorrow, +N/-N, or a weekday name.

Examples:
  routine day
  routine day tomorrow
  routine day fri
  routine day 2025-01-13`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(args)
		if err != nil {
			return err
		}

		sc := screen.New(workoutStore, cal)
		defer sc.Close()

		sc.Select(date)
		printDay(cmd.OutOrStdout(), sc.View())
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w"},
	Short:   "Show yesterday through six days ahead",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		todayKey := cal.DateKey(cal.Today())

		sc := screen.New(workoutStore, cal)
		defer sc.Close()

		for i, day := range sc.Week() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			header := fmt.Sprintf("%s %s", day.DateKey, models.WeekdayInitials[day.Weekday])
			if day.DateKey == todayKey {
				header += " (today)"
			}
			color.New(color.Bold).Fprintf(out, "%s  %d/%d\n", header, day.Done, day.Total)
			for _, e := range day.Entries {
				printEntry(out, e)
			}
		}
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle", "check"},
	Short:   "Toggle a workout's completion for a date",
	Long: `Mark a workout done on a date, or undo it if it is already marked.

The date defaults to today.

Examples:
  routine done abc12345
  routine done abc1 --date yesterday`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := cal.Today()
		if doneDate != "" {
			var err error
			date, err = cal.ParseDay(doneDate)
			if err != nil {
				return err
			}
		}

		w, err := workoutStore.Resolve(args[0])
		if err != nil {
			return err
		}

		key := cal.DateKey(date)
		toggled, found := workoutStore.ToggleCompletion(cmd.Context(), w.ID, key)
		if !found {
			return &models.NotFoundError{ID: w.ID}
		}

		out := cmd.OutOrStdout()
		if toggled.CompletedOnKey(key) {
			color.New(color.FgGreen).Fprintf(out, "✓ %s done on %s\n", toggled.Title, key)
		} else {
			color.New(color.FgYellow).Fprintf(out, "○ %s not done on %s\n", toggled.Title, key)
		}
		if !toggled.RepeatsOn(cal.WeekdayOf(date)) {
			faint.Fprintf(out, "  (not scheduled on %s)\n", models.WeekdayNames[cal.WeekdayOf(date)])
		}
		return nil
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the selectable dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		todayKey := cal.DateKey(cal.Today())

		sc := screen.New(workoutStore, cal)
		defer sc.Close()

		for _, d := range sc.Dates() {
			key := cal.DateKey(d)
			line := fmt.Sprintf("%s %s", key, models.WeekdayInitials[cal.WeekdayOf(d)])
			if key == todayKey {
				line += " (today)"
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func parseDateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return cal.Today(), nil
	}
	return cal.ParseDay(args[0])
}

func printDay(out io.Writer, day schedule.Day) {
	color.New(color.Bold).Fprintf(out, "%s %s  %d/%d\n",
		models.WeekdayNames[day.Weekday], day.DateKey, day.Done, day.Total)
	if len(day.Entries) == 0 {
		fmt.Fprintln(out, "No workouts scheduled.")
		return
	}
	for _, e := range day.Entries {
		printEntry(out, e)
	}
}

func printEntry(out io.Writer, e schedule.Entry) {
	mark := "[ ]"
	if e.Completed {
		mark = color.New(color.FgGreen).Sprint("[x]")
	}
	line := fmt.Sprintf("  %s %s %s", mark, faint.Sprint(shortID(e.Workout.ID)), e.Workout.Title)
	if v := e.Workout.Summary(); v != "" {
		line += " " + v
	}
	if e.Media != models.MediaNone {
		line += faint.Sprintf(" [%s]", e.Media)
	}
	fmt.Fprintln(out, line)
}

func init() {
	doneCmd.Flags().StringVar(&doneDate, "date", "", "date to toggle (default today)")
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(datesCmd)
}

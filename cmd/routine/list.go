// ABOUTME: CLI commands for listing and showing workouts.
// ABOUTME: Shared row formatting helpers live here too.
package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/schedule"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var faint = color.New(color.Faint)

var listDay string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workouts",
	Long: `List all workouts in the order they were added.

OUTPUT FORMAT:

  Each line shows: ID  TITLE  SETSxREPS  DAYS  [media]

  The ID is an 8-character prefix you can use with edit, done, and delete.

EXAMPLES:

  routine list              # Every workout
  routine list --day mon    # Only workouts repeating on Monday`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := workoutStore.Workouts()

		if listDay != "" {
			day, err := models.ParseWeekday(listDay)
			if err != nil {
				return err
			}
			workouts = slices.DeleteFunc(workouts, func(w models.Workout) bool {
				return !w.RepeatsOn(day)
			})
		}

		if len(workouts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workouts found.")
			return nil
		}

		for _, w := range workouts {
			printWorkoutLine(cmd, w)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout with its completion history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workoutStore.Resolve(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintln(out, w.Title)
		fmt.Fprintf(out, "  ID:     %s\n", w.ID)
		if v := w.Summary(); v != "" {
			fmt.Fprintf(out, "  Volume: %s\n", v)
		}
		fmt.Fprintf(out, "  Days:   %s\n", models.FormatWeekdays(schedule.SortedRepeatDays(&w)))
		if w.MediaURL != "" {
			fmt.Fprintf(out, "  Media:  %s (%s)\n", w.MediaURL, models.ClassifyMedia(w.MediaURL))
		}

		completed := slices.Clone(w.CompletedOn)
		slices.Sort(completed)
		fmt.Fprintf(out, "  Done:   %d times\n", len(completed))
		for _, key := range completed {
			fmt.Fprintf(out, "    %s\n", faint.Sprint(key))
		}
		return nil
	},
}

// printWorkoutLine prints the one-line summary used by list, add, and edit.
func printWorkoutLine(cmd *cobra.Command, w models.Workout) {
	line := fmt.Sprintf("%s %s %s %s",
		faint.Sprint(shortID(w.ID)),
		padRight(truncate(w.Title, 28), 28),
		padRight(w.Summary(), 8),
		models.FormatWeekdays(schedule.SortedRepeatDays(&w)))
	if kind := models.ClassifyMedia(w.MediaURL); kind != models.MediaNone {
		line += faint.Sprintf(" [%s]", kind)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// truncate shortens s to maxLen terminal columns.
func truncate(s string, maxLen int) string {
	return runewidth.Truncate(s, maxLen, "...")
}

// padRight pads s with spaces to length terminal columns.
func padRight(s string, length int) string {
	return runewidth.FillRight(s, length)
}

func init() {
	listCmd.Flags().StringVar(&listDay, "day", "", "only workouts repeating on this weekday")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

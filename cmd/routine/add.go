// ABOUTME: CLI command for adding recurring workouts.
// ABOUTME: Parses repeat days and resolves media before creating the workout.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/media"
	"github.com/harperreed/routine/internal/models"
	"github.com/spf13/cobra"
)

var (
	addDays  string
	addSets  string
	addReps  string
	addMedia string
)

var addCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a", "new"},
	Short:   "Add a recurring workout",
	Long: `Add a workout that repeats on one or more weekdays.

The title may be several words; quote it or pass it as separate arguments.

MEDIA:

  --media accepts a local image or video path (stored as a file:// URI)
  or an http(s) URL. Files ending in .mp4 or .mov are shown as video,
  anything else as an image.

Examples:
  routine add "Supino Reto" --days mon,wed,fri --sets 4 --reps 12
  routine add Plank --days daily --reps 60
  routine add Agachamento --days tue,thu --media ~/videos/squat.mp4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := models.ParseWeekdays(addDays)
		if err != nil {
			return err
		}

		mediaURL, err := resolveMedia(cmd, addMedia)
		if err != nil {
			return err
		}

		w, err := workoutStore.Create(cmd.Context(), models.WorkoutInput{
			Title:      strings.Join(args, " "),
			Sets:       addSets,
			Reps:       addReps,
			RepeatDays: days,
			MediaURL:   mediaURL,
		})
		if err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added %s\n", w.Title)
		printWorkoutLine(cmd, w)
		return nil
	},
}

// resolveMedia turns a --media value into a stored URI. Empty means no media.
func resolveMedia(cmd *cobra.Command, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	uri, ok, err := media.Resolve(cmd.Context(), media.FilePicker{}, value)
	if err != nil {
		return "", fmt.Errorf("invalid media: %w", err)
	}
	if !ok {
		return "", nil
	}
	return uri, nil
}

func init() {
	addCmd.Flags().StringVarP(&addDays, "days", "d", "", "repeat days, e.g. mon,wed,fri (required)")
	addCmd.Flags().StringVarP(&addSets, "sets", "s", "", "number of sets")
	addCmd.Flags().StringVarP(&addReps, "reps", "r", "", "number of reps")
	addCmd.Flags().StringVarP(&addMedia, "media", "m", "", "image or video path or URL")
	rootCmd.AddCommand(addCmd)
}

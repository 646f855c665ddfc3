// ABOUTME: CLI command for editing a workout.
// ABOUTME: Only flags that are given change; ID and completion history are kept.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/models"
	"github.com/spf13/cobra"
)

var (
	editTitle      string
	editDays       string
	editSets       string
	editReps       string
	editMedia      string
	editClearMedia bool
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"e", "update"},
	Short:   "Edit a workout",
	Long: `Edit a workout by its ID or ID prefix.

Only the fields you pass are changed. Completion history is kept.

Examples:
  routine edit abc12345 --sets 5 --reps 5
  routine edit abc1 --days tue,thu
  routine edit abc1 --title "Supino Inclinado"
  routine edit abc1 --clear-media`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workoutStore.Resolve(args[0])
		if err != nil {
			return err
		}

		in := w.Input()
		flags := cmd.Flags()
		if flags.Changed("title") {
			in.Title = editTitle
		}
		if flags.Changed("days") {
			days, err := models.ParseWeekdays(editDays)
			if err != nil {
				return err
			}
			in.RepeatDays = days
		}
		if flags.Changed("sets") {
			in.Sets = editSets
		}
		if flags.Changed("reps") {
			in.Reps = editReps
		}
		if flags.Changed("media") {
			uri, err := resolveMedia(cmd, editMedia)
			if err != nil {
				return err
			}
			in.MediaURL = uri
		}
		if editClearMedia {
			in.MediaURL = ""
		}

		updated, err := workoutStore.Update(cmd.Context(), w.ID, in)
		if err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", updated.Title)
		printWorkoutLine(cmd, updated)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDays, "days", "d", "", "new repeat days")
	editCmd.Flags().StringVarP(&editSets, "sets", "s", "", "new number of sets")
	editCmd.Flags().StringVarP(&editReps, "reps", "r", "", "new number of reps")
	editCmd.Flags().StringVarP(&editMedia, "media", "m", "", "new image or video path or URL")
	editCmd.Flags().BoolVar(&editClearMedia, "clear-media", false, "remove attached media")
	rootCmd.AddCommand(editCmd)
}

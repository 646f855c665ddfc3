// ABOUTME: CLI command for deleting workouts.
// ABOUTME: Supports deletion by full ID or ID prefix, with confirmation.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteSkipConfirm bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Long: `Delete a workout by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'routine list' output.

EXAMPLES:

  routine delete abc12345            # Delete by 8-char prefix, asks first
  routine rm abc1 --yes              # Short prefix, no prompt

CAUTION:

  This permanently deletes the workout and its completion history.
  If the prefix matches multiple workouts, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workoutStore.Resolve(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !deleteSkipConfirm {
			fmt.Fprintf(out, "Delete %s? [y/N] ", w.Title)
			response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		workoutStore.Delete(cmd.Context(), w.ID)

		color.New(color.FgYellow).Fprintf(out, "✗ Deleted %s\n", w.Title)
		fmt.Fprintf(out, "  %s\n", faint.Sprint(shortID(w.ID)))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteSkipConfirm, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

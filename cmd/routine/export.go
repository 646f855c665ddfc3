// ABOUTME: CLI commands for exporting and importing workouts.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workouts",
	Long: `Export workouts in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Table plus weekly schedule (for sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  routine export json                 # Export all workouts as JSON
  routine export json -o backup.json  # Save to file
  routine export yaml                 # Export as YAML
  routine export markdown             # Weekly plan as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		workouts := workoutStore.Workouts()

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(workouts)
		case "yaml":
			data, err = storage.ExportYAML(workouts)
		case "markdown", "md":
			data = []byte(storage.ExportMarkdown(workouts))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported %d workouts to %s\n", len(workouts), exportOutput)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workouts from JSON",
	Long: `Import workouts from a JSON backup file.

Accepts the output of 'routine export json' or a bare array of workouts
as stored by the app. Every workout is validated before anything is written.

By default imported workouts are added to the existing ones and a duplicate
ID is an error. --replace swaps the whole collection instead.

EXAMPLES:

  routine import backup.json            # Add workouts from file
  routine import backup.json --replace  # Replace everything`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		workouts, err := storage.ParseImport(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		n, err := workoutStore.Import(cmd.Context(), workouts, importReplace)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported %d workouts from %s\n", n, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace all workouts instead of adding")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

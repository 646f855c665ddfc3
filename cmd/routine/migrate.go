// ABOUTME: CLI command for migrating the workout snapshot between backends.
// ABOUTME: Copies the stored snapshot as-is, e.g. from sqlite to charm.
package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/charm"
	"github.com/harperreed/routine/internal/config"
	"github.com/harperreed/routine/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateForce  bool
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy workouts from one storage backend to another",
	Long: `Copy the workout snapshot from one storage backend to another.

The snapshot is copied byte for byte, so IDs and completion history are
preserved. The destination must be empty unless --force is given.

BACKENDS:

  sqlite, badger, charm

USAGE:

  routine migrate --from sqlite --to charm --dry-run   # Preview
  routine migrate --from sqlite --to charm             # Copy
  routine migrate --from charm --to badger --force     # Overwrite destination

AFTER MIGRATION:

  Point the CLI at the new backend:
    routine --backend charm list
  or set "backend" in ~/.config/routine/config.json.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		from := strings.ToLower(migrateFrom)
		to := strings.ToLower(migrateTo)
		if from == "" || to == "" {
			return fmt.Errorf("both --from and --to are required")
		}
		if from == to {
			return fmt.Errorf("source and destination are the same backend: %s", from)
		}
		for _, b := range []string{from, to} {
			if !slices.Contains(config.Backends, b) || b == "memory" {
				return fmt.Errorf("unknown backend: %q (use sqlite, badger, or charm)", b)
			}
		}

		out := cmd.OutOrStdout()

		src, err := cfg.OpenBackend(from)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", from, err)
		}
		defer src.Close()

		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			value, ok, err := src.Get(cmd.Context(), storage.SnapshotKey)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", from, err)
			}
			if !ok {
				fmt.Fprintf(out, "No workouts stored in %s.\n", from)
				return nil
			}
			fmt.Fprintf(out, "Would copy %d bytes from %s to %s.\n", len(value), from, to)
			if to == "badger" {
				dir := filepath.Join(cfg.GetDataDir(), "badger")
				if nonEmpty, _ := storage.IsDirNonEmpty(dir); nonEmpty {
					fmt.Fprintf(out, "Note: %s already has data; --force is needed if it holds workouts.\n", dir)
				}
			}
			return nil
		}

		dst, err := cfg.OpenBackend(to)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", to, err)
		}
		defer dst.Close()

		// Sync charm once, explicitly, so a failed upload is reported.
		cloud, isCharm := dst.(*charm.Client)
		if isCharm {
			cloud.SetAutoSync(false)
		}

		summary, err := storage.MigrateData(cmd.Context(), src, dst, storage.SnapshotKey, migrateForce)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Migrated %d workouts from %s to %s\n", summary.Workouts, from, to)
		if isCharm {
			if err := cloud.Sync(); err != nil {
				color.New(color.FgYellow).Fprintf(out, "⚠ Saved locally but sync failed: %v\n", err)
				fmt.Fprintln(out, "Run 'routine sync now' to retry.")
			} else {
				color.New(color.FgGreen).Fprintln(out, "✓ Synced to Charm Cloud")
			}
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite an existing destination snapshot")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}

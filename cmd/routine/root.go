// ABOUTME: Root Cobra command for routine CLI.
// ABOUTME: Loads config, logging, storage, and the workout store via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/routine/internal/config"
	"github.com/harperreed/routine/internal/dates"
	"github.com/harperreed/routine/internal/logging"
	"github.com/harperreed/routine/internal/storage"
	"github.com/harperreed/routine/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// skipStoreAnnotation marks commands that manage storage themselves.
const skipStoreAnnotation = "routine/skip-store"

var (
	cfg          *config.Config
	kvStore      storage.KV
	workoutStore *store.Store
	cal          *dates.Calendar
	logger       = logrus.New()
	logCloser    io.Closer

	flagBackend  string
	flagDataDir  string
	flagTimezone string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "routine",
	Short: "Recurring workout tracker",
	Long: `Routine is a CLI tool for planning recurring workouts and checking them off.

Each workout repeats on one or more weekdays and remembers the dates you
completed it.

QUICK START:

  $ routine add "Supino Reto" --days mon,wed,fri --sets 4 --reps 12
  $ routine day                   # What's on today
  $ routine done abc12345         # Check it off for today
  $ routine week                  # Yesterday through six days ahead
  $ routine list                  # Every workout and its repeat days

DAYS:

  Days are weekday names or prefixes (mon, tuesday, wed) separated by commas,
  or one of: daily, weekdays, weekends.

DATES:

  Commands taking a date accept YYYY-MM-DD, today, yesterday, tomorrow,
  +N/-N day offsets, or a weekday name (next occurrence, today included).

MCP INTEGRATION:

  Run 'routine mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "routine": { "command": "routine", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are stored as a single snapshot. The backend is chosen with
  --backend or the config file (~/.config/routine/config.json):

    sqlite   ~/.local/share/routine/routine.db (default)
    badger   ~/.local/share/routine/badger/
    charm    Charm KV, synced across devices
    memory   nothing is kept after the command exits

  Change settings with 'routine config set <key> <value>'. Every setting
  can also come from ROUTINE_* environment variables, e.g.
  ROUTINE_BACKEND=badger or ROUTINE_TIMEZONE=America/Sao_Paulo.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if err := loadConfig(cmd); err != nil {
			return err
		}
		if cmd.Annotations[skipStoreAnnotation] == "true" {
			return nil
		}
		return openStore(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeAll()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, charm, memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/routine)")
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for dates (default UTC)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// loadConfig layers CLI flags over the config file and environment, then
// sets up logging and the calendar.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if flags.Changed("timezone") {
		cfg.Timezone = flagTimezone
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	logCloser = logging.Setup(logger, logging.LoggerSetupParams{
		LogFileName:   config.ExpandPath(cfg.LogFile),
		LogToStderr:   cfg.LogToStderr,
		LogLevel:      cfg.GetLogLevel(),
		LogFormatJSON: cfg.LogJSON,
	})

	cal, err = cfg.Calendar()
	if err != nil {
		return err
	}
	return nil
}

// openStore opens the configured backend and loads the workout snapshot.
func openStore(cmd *cobra.Command) error {
	var err error
	kvStore, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}

	workoutStore = store.New(kvStore,
		store.WithLogger(logger.WithField("backend", cfg.GetBackend())),
		store.WithReloadOnWrite(),
	)
	workoutStore.Load(cmd.Context())
	return nil
}

func closeAll() error {
	var err error
	if kvStore != nil {
		err = kvStore.Close()
		kvStore = nil
	}
	workoutStore = nil
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

// ABOUTME: CLI commands for reading and writing the config file.
// ABOUTME: Supports show, get, set, and path.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/routine/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change settings stored in ~/.config/routine/config.json.

KEYS:

  backend         sqlite, badger, charm, or memory
  data_dir        where sqlite and badger keep their files
  timezone        IANA zone used for weekdays and dates (default UTC)
  log_level       debug, info, warn, error
  log_file        rotate logs into this file instead of stderr
  log_json        true to log JSON lines
  log_to_stderr   true to keep logging to stderr when log_file is set

Examples:
  routine config show
  routine config set timezone America/Sao_Paulo
  routine config get backend`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show effective settings",
	Long:        `Show every setting after the config file, ROUTINE_* environment variables, and flags are applied.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range config.Keys {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-14s %s\n", key, value)
		}
		faint.Fprintf(out, "\n%s\n", config.GetConfigPath())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:         "get <key>",
	Short:       "Print one effective setting",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Write one setting to the config file",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"github.com/harperreed/routine/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to plan and check off your workouts
through a standardized protocol. The server communicates via stdin/stdout;
logs go to stderr or the configured log file.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "routine": {
        "command": "routine",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  create_workout      Create a recurring workout
  update_workout      Edit title, volume, days, or media
  delete_workout      Delete a workout
  toggle_completion   Mark done / undo for a date
  list_workouts       List workouts, optionally for one weekday
  get_workout         Get a workout with its completion history
  get_day             Workouts scheduled on a date
  list_dates          The selectable date window

AVAILABLE RESOURCES:

  routine://today      Today's workouts and completion
  routine://week       Yesterday through six days ahead
  routine://workouts   Every workout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(workoutStore, cal)
		if err != nil {
			return err
		}
		defer server.Close()

		logger.WithField("backend", cfg.GetBackend()).Info("starting MCP server on stdio")
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// Package main is the entry point for the summitcheckin CLI.
//
// The board can be embedded as a library (SDK) or run as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	summitcheckin serve -c config.yaml    # Start the check-in dashboard
//	summitcheckin validate -c config.yaml # Validate configuration
//	summitcheckin report -c config.yaml   # Print the saved attendance
//	summitcheckin version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "summitcheckin",
	Short: "An attendee check-in board for events",
	Long: `summitcheckin runs an attendee check-in board.

Attendees check in with their name and team. The dashboard shows per-team
and total counts, progress toward the attendance goal and, once the goal is
reached, which team is leading. State is saved after every check-in and
restored on start.

Quick start:
  1. Create a config file (summit.yaml)
  2. Run: summitcheckin serve -c summit.yaml
  3. Open http://localhost:8080 in your browser

Example config:
  title: Intel Sustainability Summit
  goal: 50
  storage:
    driver: file
    path: ./data`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this summitcheckin binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "summitcheckin %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

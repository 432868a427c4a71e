package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/summitcheckin"
	"github.com/jpalmerr/summitcheckin/config"
)

// reportCmd prints the saved attendance without starting the server.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the saved attendance",
	Long: `Print the attendance saved in the configured storage.

The report shows the total, the per-team counts, progress toward the goal,
the leading team once the goal is reached, and every check-in in order.
Corrupt saved data is reported on stderr and treated as empty.

Example:
  summitcheckin report -c summit.yaml
  summitcheckin report -c summit.yaml --json`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	reportCmd.Flags().Bool("json", false, "print the snapshot as JSON")
	_ = reportCmd.MarkFlagRequired("config")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger := newLogger(slog.LevelWarn)

	configFile, _ := cmd.Flags().GetString("config")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := config.OpenStorage(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	board, err := summitcheckin.New(config.BuildOptions(cfg, st, logger)...)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	snap := board.Snapshot()

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return writeReport(out, snap)
}

// writeReport renders snap as plain text.
func writeReport(out io.Writer, snap summitcheckin.Snapshot) error {
	fmt.Fprintf(out, "Attendance: %d / %d (%.0f%%)\n", snap.TotalAttendees, snap.Goal, snap.Progress)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, tc := range snap.Teams {
		fmt.Fprintf(tw, "  %s\t%d\n", tc.Label, tc.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if snap.Celebration != "" {
		fmt.Fprintln(out, snap.Celebration)
	}

	if len(snap.CheckIns) == 0 {
		fmt.Fprintln(out, "No check-ins yet.")
		return nil
	}

	fmt.Fprintln(out, "Check-ins:")
	for _, c := range snap.CheckIns {
		fmt.Fprintf(out, "  %d. %s (%s)\n", c.Position, c.Name, c.TeamLabel)
	}
	return nil
}

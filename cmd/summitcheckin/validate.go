package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/summitcheckin/config"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a check-in board configuration file without starting the server.

This command parses the YAML, applies SUMMIT_* environment overrides,
expands environment variables, and validates all fields. The storage is not
opened.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  summitcheckin validate -c summit.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "(default)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Title:   %s\n", title)
	fmt.Fprintf(out, "  Port:    %d\n", cfg.Port)
	fmt.Fprintf(out, "  Goal:    %d\n", cfg.Goal)
	fmt.Fprintf(out, "  Storage: %s", cfg.Storage.Driver)
	if cfg.Storage.Path != "" {
		fmt.Fprintf(out, " (%s)", cfg.Storage.Path)
	}
	fmt.Fprintln(out)

	return nil
}

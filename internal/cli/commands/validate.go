package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logsift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <job-file>",
		Short: "Validate a job file",
		Long: `Validate a LogSift job file without processing anything.

Checks:
  - YAML syntax
  - Required fields
  - Filter timestamp formats
  - Webhook URLs and triggers
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Fprintf(out, "\nJob file valid!\n")
	fmt.Fprintf(out, "  Input:        %s\n", cfg.Input)
	fmt.Fprintf(out, "  Logs output:  %s\n", cfg.Output.Logs)
	fmt.Fprintf(out, "  Stats output: %s\n", cfg.Output.Stats)

	if cfg.Filters.StartTimestamp != "" {
		fmt.Fprintf(out, "  Filter start: %s\n", cfg.Filters.StartTimestamp)
	}
	if cfg.Filters.EndTimestamp != "" {
		fmt.Fprintf(out, "  Filter end:   %s\n", cfg.Filters.EndTimestamp)
	}
	if cfg.Filters.IPAddress != "" {
		fmt.Fprintf(out, "  Filter IP:    %s\n", cfg.Filters.IPAddress)
	}

	if len(cfg.Webhooks) > 0 {
		fmt.Fprintf(out, "\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, name, wh.Trigger)
		}
	}

	// Check if the input file exists (warning only)
	if _, err := os.Stat(cfg.Input); err != nil {
		fmt.Fprintf(out, "\nWarning: input file not found: %s\n", cfg.Input)
	}

	return nil
}

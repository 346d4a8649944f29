package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logsift/pkg/output"
	"github.com/ccollicutt/logsift/pkg/pipeline"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Output    string
	Start     string
	End       string
	IPAddress string
	Verbose   bool
	Quiet     bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <log-file>",
		Short: "Print per-user statistics without writing files",
		Long: `Aggregate a JSON access log file and print per-user statistics to stdout.

Nothing is persisted; use the process command to write the filtered entries
and statistics files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Keep entries at or after this timestamp (inclusive)")
	cmd.Flags().StringVar(&opts.End, "end", "", "Keep entries at or before this timestamp (inclusive)")
	cmd.Flags().StringVar(&opts.IPAddress, "ip-address", "", "Keep entries with this exact IP address")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show IP address and context lists")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	inputPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start, err := parseBound("start", opts.Start)
	if err != nil {
		return err
	}
	end, err := parseBound("end", opts.End)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	began := time.Now()
	result, err := pipeline.Run(ctx, pipeline.Options{
		InputPath: inputPath,
		Start:     start,
		End:       end,
		IPAddress: opts.IPAddress,
	})
	if err != nil {
		return err
	}

	report := output.NewReport(result.EntriesParsed, len(result.Entries), result.Stats, output.Metadata{
		InputFile:   inputPath,
		Filters:     result.Filters,
		ProcessedAt: time.Now(),
		Duration:    time.Since(began),
	})

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logsift/pkg/config"
	"github.com/ccollicutt/logsift/pkg/output"
	"github.com/ccollicutt/logsift/pkg/parser"
	"github.com/ccollicutt/logsift/pkg/pipeline"
	"github.com/ccollicutt/logsift/pkg/webhook"
)

// ProcessOptions holds command-line options for the process command.
type ProcessOptions struct {
	ConfigPath  string
	OutputLogs  string
	OutputStats string
	Start       string
	End         string
	IPAddress   string
	Quiet       bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewProcessCommand creates the process command.
func NewProcessCommand() *cobra.Command {
	opts := &ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "process [log-file]",
		Short: "Filter a log file and write entry and statistics reports",
		Long: `Process a JSON access log file: parse it, optionally narrow it by time
window and IP address, and write two files:
  - the filtered entries
  - per-user statistics sorted by user id

The log file can be given as an argument or as "input" in a job file
(see --config). Command-line flags override job file values.

Exit codes:
  0 - Processing completed
  2 - Input, configuration, or write error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Job file with input, outputs, and filters (YAML)")
	cmd.Flags().StringVar(&opts.OutputLogs, "output-logs", "", "Path for filtered logs output (default: filtered_logs.json)")
	cmd.Flags().StringVar(&opts.OutputStats, "output-stats", "", "Path for user statistics output (default: user_stats.json)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Keep entries at or after this timestamp (inclusive)")
	cmd.Flags().StringVar(&opts.End, "end", "", "Keep entries at or before this timestamp (inclusive)")
	cmd.Flags().StringVar(&opts.IPAddress, "ip-address", "", "Keep entries with this exact IP address")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress progress output")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_results", "When to fire webhook (on_results|always|never)")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string, opts *ProcessOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load the job file, or start from defaults
	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Command-line values override the job file
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return errors.New("no input file (pass <log-file> or set input in the job file)")
	}
	if opts.OutputLogs != "" {
		cfg.Output.Logs = opts.OutputLogs
	}
	if opts.OutputStats != "" {
		cfg.Output.Stats = opts.OutputStats
	}
	if opts.Start != "" {
		cfg.Filters.StartTimestamp = opts.Start
	}
	if opts.End != "" {
		cfg.Filters.EndTimestamp = opts.End
	}
	if opts.IPAddress != "" {
		cfg.Filters.IPAddress = opts.IPAddress
	}

	start, err := parseBound("start", cfg.Filters.StartTimestamp)
	if err != nil {
		return err
	}
	end, err := parseBound("end", cfg.Filters.EndTimestamp)
	if err != nil {
		return err
	}

	progress := func(format string, a ...interface{}) {
		if !opts.Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
		}
	}

	progress("Parsing log file: %s", cfg.Input)
	began := time.Now()

	result, err := pipeline.Run(ctx, pipeline.Options{
		InputPath:   cfg.Input,
		LogsOutput:  cfg.Output.Logs,
		StatsOutput: cfg.Output.Stats,
		Start:       start,
		End:         end,
		IPAddress:   cfg.Filters.IPAddress,
	})
	if err != nil {
		return err
	}

	progress("Parsed %d log entries", result.EntriesParsed)
	progress("After filtering: %d log entries", len(result.Entries))
	progress("Wrote filtered logs to %s", cfg.Output.Logs)
	progress("Wrote statistics for %d users to %s", len(result.Stats), cfg.Output.Stats)

	report := output.NewReport(result.EntriesParsed, len(result.Entries), result.Stats, output.Metadata{
		InputFile:   cfg.Input,
		Filters:     result.Filters,
		ProcessedAt: time.Now(),
		Duration:    time.Since(began),
	})

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report, cmd.ErrOrStderr())

	return nil
}

// parseBound parses an optional timestamp bound.
func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parser.ParseTimestamp(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s timestamp %q: %w", name, value, err)
	}
	return &t, nil
}

// createFormatter selects the report formatter for a format name.
func createFormatter(format string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ProcessOptions, report *output.Report, errOut io.Writer) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasResults()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(errOut, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(errOut, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges job file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ProcessOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnResults
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for this run.
func shouldFireWebhook(trigger config.WebhookTrigger, hasResults bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnResults:
		return hasResults
	default:
		// Default to on_results
		return hasResults
	}
}

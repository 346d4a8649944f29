package config

import "time"

const (
	// DefaultLogsOutput is the default path for the filtered entries file.
	DefaultLogsOutput = "filtered_logs.json"

	// DefaultStatsOutput is the default path for the user statistics file.
	DefaultStatsOutput = "user_stats.json"

	// DefaultWebhookTimeout is the default HTTP request timeout for webhooks.
	DefaultWebhookTimeout = 10 * time.Second
)

// DefaultConfig returns a configuration with default output destinations.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Logs:  DefaultLogsOutput,
			Stats: DefaultStatsOutput,
		},
	}
}

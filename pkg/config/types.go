// Package config provides job file loading and validation for LogSift.
package config

import "time"

// Config is the root job configuration loaded from YAML.
type Config struct {
	// Input is the path of the JSON log file to process.
	Input string `yaml:"input"`

	// Output holds the destinations for the generated files.
	Output OutputConfig `yaml:"output,omitempty"`

	// Filters narrows the entries before aggregation.
	Filters FilterConfig `yaml:"filters,omitempty"`

	// Webhooks receive the stats report after a run.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// OutputConfig holds the destinations for the generated files.
type OutputConfig struct {
	// Logs is the path for the filtered entries file.
	Logs string `yaml:"logs,omitempty"`

	// Stats is the path for the user statistics file.
	Stats string `yaml:"stats,omitempty"`
}

// FilterConfig defines optional filter predicates. Timestamps use any layout
// the parser accepts; empty fields mean no constraint.
type FilterConfig struct {
	StartTimestamp string `yaml:"start_timestamp,omitempty"`
	EndTimestamp   string `yaml:"end_timestamp,omitempty"`
	IPAddress      string `yaml:"ip_address,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnResults fires only when at least one user produced
	// statistics (default).
	WebhookTriggerOnResults WebhookTrigger = "on_results"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending the stats report.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_results" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

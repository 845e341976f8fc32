// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New with defaults and Load for layered file/env loading.
// - External errors must be wrapped via this package's error kinds.
package config

import "runtime"

// Config contains process configuration for the batch CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// EventsPath points at the input event table (CSV).
	EventsPath string `koanf:"events"`

	// LabelsPath optionally points at the label table (CSV). Empty means
	// no join is performed.
	LabelsPath string `koanf:"labels"`

	// OutputPath is where the feature table is written (CSV).
	OutputPath string `koanf:"output"`

	// WorkerCount sets how many goroutines share the entity groups.
	WorkerCount int `koanf:"worker_count"`

	// MetricsAddr, when non-empty, serves Prometheus metrics on that
	// address (e.g. ":9090") for the duration of the run.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		EventsPath:  "train_logs.csv",
		LabelsPath:  "",
		OutputPath:  "features.csv",
		WorkerCount: runtime.NumCPU(),
		MetricsAddr: "",
	}
}

// Package config holds the file configuration consumed by the CLI and the
// integration harness. The driver API itself is configured in code.
package config

import (
	"runtime"
)

// Config is the full file configuration.
type Config struct {
	// Addresses lists the servers to connect to; more than one address means
	// a cluster deployment.
	Addresses []string `yaml:"addresses"`
	Database  string   `yaml:"database"`

	Username string `yaml:"username"`
	Password string `yaml:"password"`

	TLS TLSConfig `yaml:"tls"`

	// Parallelism is the number of request batching executors shared by all
	// transactions of one client.
	Parallelism int `yaml:"parallelism"`

	// HistoryDBPath is where the CLI keeps its query history.
	HistoryDBPath string `yaml:"history_db_path"`

	LogLevel string `yaml:"log_level"`
}

// TLSConfig controls transport security.
type TLSConfig struct {
	Enabled bool `yaml:"enabled"`
	// RootCAPath, when set, restricts trust to the CA certificate at this
	// path.
	RootCAPath string `yaml:"root_ca_path"`
}

// Cluster reports whether the configuration names more than one server.
func (c *Config) Cluster() bool {
	return len(c.Addresses) > 1
}

// ApplyDefaults sets defaults for unset configuration fields.
func ApplyDefaults(cfg *Config) {
	if len(cfg.Addresses) == 0 {
		cfg.Addresses = []string{"localhost:1729"}
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	if cfg.HistoryDBPath == "" {
		cfg.HistoryDBPath = "./data/history.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

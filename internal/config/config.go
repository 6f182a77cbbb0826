// Package config defines process configuration and its loading order.
package config

import "strconv"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Port configures the application listener, kept as a bare port
	// number because the legacy PORT variable selects it that way.
	Port int `koanf:"port"`

	// DiagAddr configures the diagnostics listener serving /metrics.
	DiagAddr string `koanf:"diag_addr"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Port:     3000,
		DiagAddr: ":9999",
	}
}

// Addr returns the application listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

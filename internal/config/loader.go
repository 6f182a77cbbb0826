package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New)
//  2. file (YAML) if HTTPMETHODS_CONFIG is set
//  3. env (prefix HTTPMETHODS_)
//  4. PORT, the variable the original deployments configured the listener with
func Load() (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("HTTPMETHODS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Environment variables: HTTPMETHODS_PORT, HTTPMETHODS_DIAG_ADDR, ...
	// Map env keys like HTTPMETHODS_DIAG_ADDR -> diag_addr (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HTTPMETHODS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "httpmethods_")

		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load config env: %w", err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The bare PORT variable wins over everything else.
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT %q: %w", v, err)
		}

		cfg.Port = p
	}

	// Basic validation
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("port must be positive, got %d", cfg.Port)
	}

	if cfg.DiagAddr == "" {
		return nil, errors.New("diag_addr must not be empty")
	}

	return &cfg, nil
}

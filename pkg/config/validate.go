package config

import (
	"fmt"
	"strings"
)

// Validate checks value ranges. The API key is not required here because some
// commands work offline; the client rejects a missing key when it dials.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store: path must not be empty")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port must be within 0..65535 (got %d)", s.Port)
	}
	if s.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %v)", s.ConnectTimeout)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be >= 0 (got %v)", s.RequestTimeout)
	}
	return nil
}

func (i *IngestConfig) validate() error {
	if i.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", i.Workers)
	}
	if i.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", i.BatchSize)
	}
	if i.MinCount < 1 {
		return fmt.Errorf("min_count must be >= 1 (got %d)", i.MinCount)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	return nil
}

package model

import (
	"fmt"
	"time"
)

// Output formats accepted by list commands.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

// Config holds the CLI configuration persisted in the state store.
type Config struct {
	// BaseURL overrides the Fuel server base URL; empty means the built-in default
	BaseURL string `json:"base_url,omitempty"`

	// Token is sent as the Private-token header; empty sends no auth header
	Token string `json:"token,omitempty"`

	// CachePath overrides the catalog cache file location
	CachePath string `json:"cache_path,omitempty"`

	// RefreshThreshold is a duration string (e.g. "24h") after which the
	// cache counts as stale; empty means an existing cache never goes stale
	RefreshThreshold string `json:"refresh_threshold,omitempty"`

	// Output is the default list output format: table, json or csv
	Output string `json:"output,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Output: OutputTable,
	}
}

// Threshold parses RefreshThreshold. A nil result means no threshold is
// configured.
func (c Config) Threshold() (*time.Duration, error) {
	if c.RefreshThreshold == "" {
		return nil, nil
	}

	d, err := time.ParseDuration(c.RefreshThreshold)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh threshold %q: %w", c.RefreshThreshold, err)
	}

	return &d, nil
}

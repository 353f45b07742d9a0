package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/fuelr/internal/fuel"
	"github.com/inovacc/fuelr/internal/model"
	"github.com/inovacc/fuelr/internal/store"
)

// resolveConfig merges the stored configuration with environment variables
// and global flags. Sources in priority order:
//  1. --url / --token / --cache flags
//  2. FUELR_URL / FUELR_TOKEN / FUELR_CACHE environment variables
//  3. Stored configuration
func resolveConfig(st store.Store) (*model.Config, error) {
	cfg, err := st.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := os.Getenv("FUELR_URL"); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv("FUELR_TOKEN"); v != "" {
		cfg.Token = v
	}

	if v := os.Getenv("FUELR_CACHE"); v != "" {
		cfg.CachePath = v
	}

	if flagURL != "" {
		cfg.BaseURL = flagURL
	}

	if flagToken != "" {
		cfg.Token = flagToken
	}

	if flagCache != "" {
		cfg.CachePath = flagCache
	}

	return cfg, nil
}

// resolveOutput picks the output format: the per-command flag wins,
// then the configured default, then the table format.
func resolveOutput(cfg *model.Config, flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output
	}

	if format == "" {
		format = model.OutputTable
	}

	switch format {
	case model.OutputTable, model.OutputJSON, model.OutputCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or csv)", format)
	}
}

// fuelClientFactory builds the catalog client from a resolved config.
// It can be overridden in tests to inject a stub transport.
var fuelClientFactory = func(cfg *model.Config) *fuel.Client {
	return fuel.New(fuel.Options{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.Token,
		CachePath: cfg.CachePath,
		Logger:    slog.Default(),
	})
}

// newFuelClient returns a catalog client for the resolved config.
func newFuelClient(cfg *model.Config) *fuel.Client {
	return fuelClientFactory(cfg)
}

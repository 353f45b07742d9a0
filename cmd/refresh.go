package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/fuelr/internal/fuel"
	"github.com/inovacc/fuelr/internal/model"
	"github.com/inovacc/fuelr/internal/store"
	"github.com/spf13/cobra"
)

var (
	refreshThreshold string
	refreshForce     bool
	refreshNoWrite   bool
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the model catalog from the Fuel server",
	Long: `Fetch the model catalog page by page and replace the local cache.

The refresh stops silently at the first page that fails and keeps
everything fetched up to that point. Only a completely empty result is
treated as a failure.

With --threshold the refresh is skipped while the cache file is younger
than the given duration. Without a threshold an existing cache is never
considered stale; use --force to refresh regardless.

Examples:
  fuelr refresh
  fuelr refresh --threshold 24h
  fuelr refresh --force --no-write`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().StringVar(&refreshThreshold, "threshold", "", "Skip the refresh while the cache is younger than this (e.g. 24h)")
	refreshCmd.Flags().BoolVar(&refreshForce, "force", false, "Refresh even if the cache is fresh")
	refreshCmd.Flags().BoolVar(&refreshNoWrite, "no-write", false, "Do not persist the fetched catalog to the cache file")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	if refreshThreshold != "" {
		cfg.RefreshThreshold = refreshThreshold
	}

	threshold, err := cfg.Threshold()
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	if !refreshForce && !client.ShouldRefresh(threshold) {
		_, _ = fmt.Fprintln(os.Stdout, "Cache is fresh, nothing to do (use --force to refresh anyway).")
		return nil
	}

	sink := fuel.ProgressFunc(func(m model.FuelModel) {
		slog.Debug("fetched model", "owner", m.Owner, "name", m.Name)
	})

	started := time.Now()

	result, err := client.Refresh(cmd.Context(), fuel.RefreshOptions{
		WriteCache: !refreshNoWrite,
		Progress:   sink,
	})

	rec := &model.RefreshRecord{
		UID:       uuid.New().String(),
		StartedAt: started,
		Elapsed:   time.Since(started),
	}

	if err != nil {
		rec.Error = err.Error()
		saveRefreshRecord(st, rec)

		return fmt.Errorf("refresh failed: %w", err)
	}

	rec.Pages = result.Pages
	rec.Models = len(result.Models)
	rec.CacheWritten = !refreshNoWrite && result.CacheErr == nil

	saveRefreshRecord(st, rec)

	_, _ = fmt.Fprintf(os.Stdout, "Fetched %d models across %d pages in %s\n",
		len(result.Models), result.Pages, rec.Elapsed.Round(time.Millisecond))

	switch {
	case result.CacheErr != nil:
		// The snapshot is good even when the cache write failed
		_, _ = fmt.Fprintf(os.Stderr, "Warning: cache not written: %v\n", result.CacheErr)
	case !refreshNoWrite:
		_, _ = fmt.Fprintf(os.Stdout, "Cache written to %s\n", client.CachePath())
	}

	return nil
}

// saveRefreshRecord records a refresh attempt, best-effort
func saveRefreshRecord(st store.Store, rec *model.RefreshRecord) {
	if err := st.SaveRefresh(rec); err != nil {
		slog.Debug("refresh history not recorded", "error", err)
	}
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/inovacc/fuelr/internal/cache"
	"github.com/inovacc/fuelr/internal/store"
	"github.com/spf13/cobra"
)

var statusHistory int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache and refresh status",
	Long: `Show the state of the local model cache and the recent refresh history.

Examples:
  fuelr status
  fuelr status --history 10`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().IntVar(&statusHistory, "history", 0, "Also list the last N refresh attempts")
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	threshold, err := cfg.Threshold()
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	items := map[string]string{}
	order := []string{"Cache file", "Cache age", "Models", "Staleness", "Last refresh"}

	cachePath := client.CachePath()
	if cachePath == "" {
		cachePath = "(none)"
	}

	items["Cache file"] = truncateString(cachePath, boxWidth-16)

	mod, modErr := cache.LastModified(client.CachePath())
	if modErr == nil {
		items["Cache age"] = formatAge(mod)
	} else {
		items["Cache age"] = "no cache file"
	}

	if models := client.Models(nil); models != nil {
		items["Models"] = fmt.Sprintf("%d", len(models))
	} else {
		items["Models"] = "none"
	}

	switch {
	case modErr != nil:
		items["Staleness"] = "stale (no cache)"
	case threshold == nil:
		items["Staleness"] = "fresh (no threshold configured)"
	case client.ShouldRefresh(threshold):
		items["Staleness"] = fmt.Sprintf("stale (older than %s)", cfg.RefreshThreshold)
	default:
		items["Staleness"] = fmt.Sprintf("fresh (younger than %s)", cfg.RefreshThreshold)
	}

	last, err := st.LastRefresh()
	switch {
	case err != nil:
		items["Last refresh"] = "unknown"
	case last == nil:
		items["Last refresh"] = "never"
	case last.Error != "":
		items["Last refresh"] = fmt.Sprintf("%s (failed)", formatAge(last.StartedAt))
	default:
		items["Last refresh"] = fmt.Sprintf("%s (%d models)", formatAge(last.StartedAt), last.Models)
	}

	printInfoBox("Fuel Cache Status", items, order)

	if statusHistory > 0 {
		return printRefreshHistory(st, statusHistory)
	}

	return nil
}

func printRefreshHistory(st store.Store, limit int) error {
	records, err := st.ListRefreshes(limit)
	if err != nil {
		return fmt.Errorf("failed to list refresh history: %w", err)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "\nNo refresh attempts recorded.")
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "STARTED\tELAPSED\tPAGES\tMODELS\tCACHE\tRESULT")
	_, _ = fmt.Fprintln(w, "-------\t-------\t-----\t------\t-----\t------")

	for _, rec := range records {
		outcome := "ok"
		if rec.Error != "" {
			outcome = truncateString(rec.Error, 40)
		}

		written := ""
		if rec.CacheWritten {
			written = "written"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			rec.StartedAt.Local().Format(time.DateTime),
			rec.Elapsed.Round(time.Millisecond),
			rec.Pages,
			rec.Models,
			written,
			outcome,
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

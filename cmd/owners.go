package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/fuelr/internal/model"
	"github.com/spf13/cobra"
)

var ownersOutput string

var ownersCmd = &cobra.Command{
	Use:   "owners",
	Short: "List distinct model owners",
	Long: `List the distinct owners across the cached catalog.

Owners that differ only in case are listed once, keeping the spelling
that appears first in the catalog. The list is sorted alphabetically
ignoring case.

Examples:
  fuelr owners
  fuelr owners -o json`,
	RunE: runOwners,
}

func init() {
	rootCmd.AddCommand(ownersCmd)

	ownersCmd.Flags().StringVarP(&ownersOutput, "output", "o", "", "Output format: table, json or csv")
}

func runOwners(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	output, err := resolveOutput(cfg, ownersOutput)
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	owners := client.Owners(nil)
	if owners == nil {
		printEmptyResult("models", "fuelr refresh")
		return nil
	}

	switch output {
	case model.OutputJSON:
		return outputJSON(owners)
	case model.OutputCSV:
		return outputNamesCSV(owners)
	default:
		for _, owner := range owners {
			_, _ = fmt.Fprintln(os.Stdout, owner)
		}

		_, _ = fmt.Fprintf(os.Stdout, "\nTotal: %d owners\n", len(owners))

		return nil
	}
}

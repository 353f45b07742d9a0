package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/fuelr/internal/model"
	"github.com/spf13/cobra"
)

var tagsOutput string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List distinct model tags",
	Long: `List the distinct tags across all models of the cached catalog.

Tags that differ only in case are listed once, keeping the spelling
that appears first in the catalog. The list is sorted alphabetically
ignoring case.

Examples:
  fuelr tags
  fuelr tags -o csv`,
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringVarP(&tagsOutput, "output", "o", "", "Output format: table, json or csv")
}

func runTags(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	output, err := resolveOutput(cfg, tagsOutput)
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	tags := client.Tags(nil)
	if tags == nil {
		printEmptyResult("models", "fuelr refresh")
		return nil
	}

	switch output {
	case model.OutputJSON:
		return outputJSON(tags)
	case model.OutputCSV:
		return outputNamesCSV(tags)
	default:
		for _, tag := range tags {
			_, _ = fmt.Fprintln(os.Stdout, tag)
		}

		_, _ = fmt.Fprintf(os.Stdout, "\nTotal: %d tags\n", len(tags))

		return nil
	}
}

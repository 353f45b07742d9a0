package cmd

import (
	"fmt"

	"github.com/inovacc/fuelr/internal/model"
	"github.com/spf13/cobra"
)

var (
	modelsOwner   string
	modelsTag     string
	modelsPrivate bool
	modelsPublic  bool
	modelsOutput  string
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List cached models",
	Long: `List the models held in the local cache, optionally filtered.

Filters compose: --owner keeps only that owner's models, --tag keeps
only models carrying the tag, --private/--public keep only one
visibility. All filters preserve catalog order.

Examples:
  fuelr models
  fuelr models --owner OpenRobotics
  fuelr models --tag warehouse --public
  fuelr models -o json`,
	Aliases: []string{"ls"},
	RunE:    runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVar(&modelsOwner, "owner", "", "Only models owned by this user or organization")
	modelsCmd.Flags().StringVar(&modelsTag, "tag", "", "Only models carrying this tag")
	modelsCmd.Flags().BoolVar(&modelsPrivate, "private", false, "Only private models")
	modelsCmd.Flags().BoolVar(&modelsPublic, "public", false, "Only public models")
	modelsCmd.Flags().StringVarP(&modelsOutput, "output", "o", "", "Output format: table, json or csv")
}

func runModels(cmd *cobra.Command, args []string) error {
	if modelsPrivate && modelsPublic {
		return fmt.Errorf("--private and --public are mutually exclusive")
	}

	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	output, err := resolveOutput(cfg, modelsOutput)
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	models := client.Models(nil)
	if models == nil {
		printEmptyResult("models", "fuelr refresh")
		return nil
	}

	if modelsOwner != "" {
		models = client.ModelsByOwner(models, modelsOwner)
	}

	if modelsTag != "" {
		models = client.ModelsByTag(models, modelsTag)
	}

	if modelsPrivate || modelsPublic {
		models = client.ModelsByPrivate(models, modelsPrivate)
	}

	switch output {
	case model.OutputJSON:
		return outputJSON(models)
	case model.OutputCSV:
		return outputModelsCSV(models)
	default:
		return outputModelsTable(models)
	}
}

package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/fuelr/internal/cli"
	"github.com/spf13/cobra"
)

var browseOwner string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse cached models interactively",
	Long: `Browse the cached catalog in an interactive, filterable list.

Type / to filter, enter to show a model's details, q to quit.

Examples:
  fuelr browse
  fuelr browse --owner OpenRobotics`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseOwner, "owner", "", "Only models owned by this user or organization")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := resolveConfig(st)
	if err != nil {
		return err
	}

	client := newFuelClient(cfg)

	models := client.Models(nil)
	if models == nil {
		printEmptyResult("models", "fuelr refresh")
		return nil
	}

	title := "Fuel Models"

	if browseOwner != "" {
		models = client.ModelsByOwner(models, browseOwner)
		title = fmt.Sprintf("Fuel Models by %s", browseOwner)
	}

	m := cli.NewModelList(models, title)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	listModel := finalModel.(cli.ModelListModel)

	selected := listModel.GetSelectedModel()
	if selected == nil {
		return nil
	}

	visibility := "public"
	if selected.Private {
		visibility = "private"
	}

	items := map[string]string{
		"Owner":      selected.Owner,
		"Name":       truncateString(selected.Name, boxWidth-12),
		"Visibility": visibility,
		"Downloads":  fmt.Sprintf("%d", selected.Downloads),
		"Likes":      fmt.Sprintf("%d", selected.Likes),
		"Size":       formatSize(int64(selected.Filesize)),
		"License":    truncateString(selected.LicenseName, boxWidth-13),
		"Tags":       truncateString(strings.Join(selected.Tags, ", "), boxWidth-10),
		"Updated":    selected.UpdatedAt,
	}
	order := []string{"Owner", "Name", "Visibility", "Downloads", "Likes", "Size", "License", "Tags", "Updated"}

	printInfoBox("Model Details", items, order)

	return nil
}

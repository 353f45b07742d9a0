package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/inovacc/fuelr/internal/model"
	"github.com/jszwec/csvutil"
)

// outputJSON writes data to stdout as indented JSON
func outputJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// modelRow is the flattened CSV shape for a catalog record.
type modelRow struct {
	Name      string `csv:"name"`
	Owner     string `csv:"owner"`
	Private   bool   `csv:"private"`
	Downloads int    `csv:"downloads"`
	Likes     int    `csv:"likes"`
	Filesize  int    `csv:"filesize"`
	License   string `csv:"license"`
	Tags      string `csv:"tags"`
	UpdatedAt string `csv:"updated_at"`
}

// outputModelsCSV writes catalog records to stdout as CSV with a header row
func outputModelsCSV(models []model.FuelModel) error {
	rows := make([]modelRow, 0, len(models))

	for _, m := range models {
		rows = append(rows, modelRow{
			Name:      m.Name,
			Owner:     m.Owner,
			Private:   m.Private,
			Downloads: m.Downloads,
			Likes:     m.Likes,
			Filesize:  m.Filesize,
			License:   m.LicenseName,
			Tags:      strings.Join(m.Tags, "|"),
			UpdatedAt: m.UpdatedAt,
		})
	}

	b, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	_, err = os.Stdout.Write(b)

	return err
}

// nameRow is the single-column CSV shape for owner and tag listings.
type nameRow struct {
	Name string `csv:"name"`
}

// outputNamesCSV writes a name list to stdout as single-column CSV
func outputNamesCSV(names []string) error {
	rows := make([]nameRow, 0, len(names))

	for _, n := range names {
		rows = append(rows, nameRow{Name: n})
	}

	b, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	_, err = os.Stdout.Write(b)

	return err
}

// outputModelsTable writes catalog records to stdout as an aligned table
func outputModelsTable(models []model.FuelModel) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "NAME\tOWNER\tPRIVATE\tDOWNLOADS\tLIKES\tSIZE\tTAGS")
	_, _ = fmt.Fprintln(w, "----\t-----\t-------\t---------\t-----\t----\t----")

	for _, m := range models {
		visibility := ""
		if m.Private {
			visibility = "yes"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			truncateString(m.Name, 40),
			m.Owner,
			visibility,
			m.Downloads,
			m.Likes,
			formatSize(int64(m.Filesize)),
			truncateString(strings.Join(m.Tags, ","), 30),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nTotal: %d models\n", len(models))

	return nil
}

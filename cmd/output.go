package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/JamesBMiddleton/nutritrack/pkg/chart"
	"github.com/JamesBMiddleton/nutritrack/pkg/diary"
	"github.com/JamesBMiddleton/nutritrack/pkg/search"
	"github.com/JamesBMiddleton/nutritrack/pkg/session"
)

// writeStructured prints v as json or yaml.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeResults(w io.Writer, format string, results []search.Result, numbered bool) error {
	if format != "table" {
		return writeStructured(w, format, results)
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No foods found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if numbered {
		fmt.Fprintln(tw, "ROW\tID\tDESCRIPTION\tCOMPLETENESS")
	} else {
		fmt.Fprintln(tw, "ID\tDESCRIPTION\tCOMPLETENESS")
	}
	for i, r := range results {
		if numbered {
			fmt.Fprintf(tw, "%d\t", i)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Description, r.CompletenessLabel)
	}
	return tw.Flush()
}

func writeView(w io.Writer, format string, view session.View) error {
	if format != "chart" {
		return writeStructured(w, format, view)
	}
	return chart.Render(w, view.Title, view.Report, chart.Options{Color: !viper.GetBool("no-color")})
}

func writeEntries(w io.Writer, entries []diary.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Diary is empty.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFOOD\tGRAMS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%g\n", e.FoodID, e.Description, e.Grams)
	}
	return tw.Flush()
}

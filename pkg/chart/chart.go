package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
)

const DefaultWidth = 30

type Options struct {
	// Width is the number of cells of a full (100%) bar.
	Width int
	Color bool
}

// Render draws one panel per category, each row showing the amount, the
// percentage label and a bar.
func Render(w io.Writer, title string, report rdi.Report, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	title = utils.Capitalize(title)
	if opts.Color {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	for _, c := range nutrients.Categories {
		fmt.Fprintf(w, "\n%s\n", c)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, s := range nutrients.InCategory(c) {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n",
				TickLabel(s, report.Amounts[s.Index]),
				report.Labels[s.Index],
				bar(report, s.Index, opts))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// TickLabel formats a row heading, e.g. "Protein - 12.6 g".
func TickLabel(s nutrients.Slot, a nutrients.Amount) string {
	value := "-"
	if a.Valid {
		value = strconv.FormatFloat(math.Round(a.Value*100)/100, 'f', -1, 64)
	}
	return fmt.Sprintf("%s - %s %s", s.Name, value, s.Unit)
}

func bar(report rdi.Report, slot int, opts Options) string {
	placeholder := report.Colours[slot] == rdi.Neutral
	if placeholder && !opts.Color {
		return strings.Repeat("·", opts.Width)
	}

	filled := int(math.Round(report.Bars[slot] / 100 * float64(opts.Width)))
	if filled < 0 {
		filled = 0
	}
	if filled > opts.Width {
		filled = opts.Width
	}
	cells := strings.Repeat("█", filled) + strings.Repeat("░", opts.Width-filled)
	if !opts.Color {
		return cells
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(report.Colours[slot])).Render(cells)
}

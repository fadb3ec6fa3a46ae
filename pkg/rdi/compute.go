package rdi

import (
	"math"
	"strconv"
	"strings"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

const (
	LabelNoData   = "No data"
	LabelNoTarget = "No target"
)

// Report is everything needed to draw one nutrition chart.
type Report struct {
	Amounts nutrients.Vector `json:"amounts" yaml:"amounts"`
	Targets nutrients.Vector `json:"targets" yaml:"targets"`
	// Bars is the percentage of target clamped to 100, for bar widths.
	Bars    [nutrients.Count]float64 `json:"bars" yaml:"bars"`
	Labels  [nutrients.Count]string  `json:"labels" yaml:"labels"`
	Colours [nutrients.Count]string  `json:"colours" yaml:"colours"`
}

// Compute expresses amounts as percentages of the sex-specific daily targets.
// Slots with an unknown amount are labelled "No data"; slots with an unknown
// or zero target are labelled "No target". Both are drawn as full neutral bars.
func Compute(amounts nutrients.Vector, table *Table, sex Sex, weightKg float64) Report {
	r := Report{
		Amounts: amounts,
		Targets: table.Targets(sex, weightKg),
	}

	for i := range amounts {
		amount, target := amounts[i], r.Targets[i]
		switch {
		case !amount.Valid:
			r.Bars[i], r.Labels[i], r.Colours[i] = 100, LabelNoData, Neutral
		case !target.Valid || target.Value == 0:
			r.Bars[i], r.Labels[i], r.Colours[i] = 100, LabelNoTarget, Neutral
		default:
			pct := amount.Value / target.Value * 100
			r.Bars[i] = math.Min(pct, 100)
			r.Labels[i] = PercentLabel(pct)
			r.Colours[i] = table.Record(i).Colour
		}
	}
	return r
}

// PercentLabel rounds to 2 decimals and keeps at least one: "4.0%", "33.33%".
func PercentLabel(pct float64) string {
	rounded := math.Round(pct*100) / 100
	if rounded == 0 {
		rounded = 0 // drop the sign of -0
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s + "%"
}

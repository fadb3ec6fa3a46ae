package foods

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

type testRow struct {
	name         string
	description  string
	amounts      map[int]float64
	completeness string
}

func headerCells() []string {
	cells := []string{"", "Food"}
	for _, s := range nutrients.Slots() {
		cells = append(cells, s.Header())
	}
	return append(cells, "Description", "Completeness (%)")
}

func rowCells(id int, r testRow) []string {
	cells := []string{strconv.Itoa(id), r.name}
	for i := 0; i < nutrients.Count; i++ {
		if v, ok := r.amounts[i]; ok {
			cells = append(cells, strconv.FormatFloat(v, 'f', -1, 64))
		} else {
			cells = append(cells, "")
		}
	}
	return append(cells, r.description, r.completeness)
}

func buildCSV(rows ...testRow) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(headerCells())
	for i, r := range rows {
		_ = w.Write(rowCells(i, r))
	}
	w.Flush()
	return b.String()
}

func buildHTML(rows ...testRow) string {
	var b strings.Builder
	b.WriteString("<html><body><table border=\"1\" class=\"dataframe\">\n<thead>\n<tr style=\"text-align: right;\">")
	for _, h := range headerCells() {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for i, r := range rows {
		cells := rowCells(i, r)
		b.WriteString("<tr><th>" + cells[0] + "</th>")
		for _, c := range cells[1:] {
			if c == "" {
				c = "NaN"
			}
			b.WriteString("<td>" + c + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table></body></html>")
	return b.String()
}

package foods

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTML loads a table from the first <table> of an HTML document, as
// written by pandas' DataFrame.to_html: the index is a <th> cell at the
// start of each body row.
func ReadHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in document")
	}

	headerRow := table.Find("thead tr").First()
	bodyRows := table.Find("tbody tr")
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
		bodyRows = headerRow.NextAll()
	}

	if err := checkHeader(cellTexts(headerRow)); err != nil {
		return nil, err
	}

	var rows []Food
	var rowErr error
	bodyRows.EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		f, err := parseRow(len(rows), cellTexts(tr))
		if err != nil {
			rowErr = err
			return false
		}
		rows = append(rows, f)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return NewTable(rows), nil
}

func cellTexts(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}

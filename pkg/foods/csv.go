package foods

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV loads a table from CSV with one header row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading header: empty dataset")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []Food
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		f, err := parseRow(len(rows), rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, f)
	}
	return NewTable(rows), nil
}

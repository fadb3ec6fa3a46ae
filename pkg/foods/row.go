package foods

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

// Dataset rows are laid out as:
//
//	index | name | 48 nutrient columns | description | completeness (%)
const columnCount = nutrients.Count + 4

func checkHeader(header []string) error {
	if len(header) != columnCount {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(header), columnCount)
	}
	for i, s := range nutrients.Slots() {
		col := strings.TrimSpace(header[i+2])
		if ls, ok := nutrients.Lookup(col); !ok || ls.Index != s.Index {
			utils.Log.Debugf("column %d is %q, expected %q", i+2, col, s.Header())
		}
	}
	return nil
}

// parseRow converts the cells of one dataset row, index column included.
func parseRow(id int, cells []string) (Food, error) {
	if len(cells) != columnCount {
		return Food{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnCount, id, len(cells), columnCount)
	}

	f := Food{
		ID:          id,
		Name:        strings.TrimSpace(cells[1]),
		Description: strings.TrimSpace(cells[len(cells)-2]),
	}
	for i := 0; i < nutrients.Count; i++ {
		a, err := nutrients.ParseAmount(cells[i+2])
		if err != nil {
			return Food{}, fmt.Errorf("row %d, %s: %w", id, nutrients.SlotAt(i).Header(), err)
		}
		f.Per100g[i] = a
	}

	completeness := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cells[len(cells)-1]), "%"))
	if completeness == "" || strings.EqualFold(completeness, "nan") {
		f.Completeness = f.Per100g.Completeness()
		return f, nil
	}
	c, err := strconv.ParseFloat(completeness, 64)
	if err != nil {
		return Food{}, fmt.Errorf("row %d, completeness: %w", id, err)
	}
	f.Completeness = c
	return f, nil
}

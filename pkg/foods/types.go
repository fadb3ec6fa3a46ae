package foods

import (
	"errors"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrColumnCount  = errors.New("unexpected number of dataset columns")
)

// Food is one row of the nutrition table. Nutrient amounts are per 100g.
type Food struct {
	// ID is the row position in the table it was loaded into. It is only
	// stable for that Table instance.
	ID           int              `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Description  string           `json:"description" yaml:"description"`
	Per100g      nutrients.Vector `json:"per_100g" yaml:"per_100g"`
	Completeness float64          `json:"completeness" yaml:"completeness"`
}

// Resolved is an amount vector ready for RDI computation, with the name to
// display above the chart.
type Resolved struct {
	Name    string           `json:"name" yaml:"name"`
	Amounts nutrients.Vector `json:"amounts" yaml:"amounts"`
}

// DiaryTitle labels charts of a diary total.
const DiaryTitle = "Daily nutrition targets"

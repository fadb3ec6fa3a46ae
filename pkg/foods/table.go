package foods

import (
	"fmt"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

// Table is the loaded, read-only nutrition table.
type Table struct {
	foods []Food
}

// NewTable copies foods into a table, assigning IDs by position.
func NewTable(foods []Food) *Table {
	out := make([]Food, len(foods))
	for i, f := range foods {
		f.ID = i
		out[i] = f
	}
	return &Table{foods: out}
}

func (t *Table) Len() int {
	return len(t.foods)
}

// Food returns the row with the given id.
func (t *Table) Food(id int) (Food, error) {
	if id < 0 || id >= len(t.foods) {
		return Food{}, fmt.Errorf("%w: id %d", ErrFoodNotFound, id)
	}
	return t.foods[id], nil
}

// Each calls fn for every row in table order.
func (t *Table) Each(fn func(Food)) {
	for _, f := range t.foods {
		fn(f)
	}
}

// Resolve scales a food's per-100g composition to grams. Unknown slots stay
// unknown.
func (t *Table) Resolve(id int, grams float64) (Resolved, error) {
	f, err := t.Food(id)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Name:    f.Description,
		Amounts: f.Per100g.Scale(grams / 100),
	}, nil
}

// DiaryTotal passes an already accumulated vector through unchanged.
func DiaryTotal(v nutrients.Vector) Resolved {
	return Resolved{Name: DiaryTitle, Amounts: v}
}

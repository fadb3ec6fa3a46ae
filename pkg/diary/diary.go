package diary

import (
	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

// Entry records one food added to the diary.
type Entry struct {
	FoodID      int     `json:"food_id" yaml:"food_id"`
	Description string  `json:"description" yaml:"description"`
	Grams       float64 `json:"grams" yaml:"grams"`
}

// Diary is a running nutrient total for one session. It is not safe for
// concurrent use; each session owns its own.
type Diary struct {
	total   nutrients.Vector
	entries []Entry
}

func New() *Diary {
	return &Diary{total: nutrients.Zero()}
}

// AddFood adds grams of food to the total. Unknown nutrient values count as
// zero. Negative grams are not rejected and subtract from the total.
func (d *Diary) AddFood(food foods.Food, grams float64) *Diary {
	d.total = d.total.Add(food.Per100g.FillUnknown().Scale(grams / 100))
	d.entries = append(d.entries, Entry{FoodID: food.ID, Description: food.Description, Grams: grams})
	return d
}

// Vector returns the current total.
func (d *Diary) Vector() nutrients.Vector {
	return d.total
}

func (d *Diary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Diary) Reset() {
	d.total = nutrients.Zero()
	d.entries = nil
}

package rdi

import (
	"fmt"
	"strings"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
)

type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Female {
		return "Female"
	}
	return "Male"
}

func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return Male, fmt.Errorf("unknown sex %q (want male or female)", s)
}

const (
	// Neutral colours bars that have no data or no target.
	Neutral = "#efebe7"

	Limit   = "#C26862" // nutrients to keep under the target
	Goal    = "#589A5D" // nutrients to reach
	NoColor = "white"
)

// Protein and the amino acids, slots 14 to 23 inclusive, have targets per kg
// of bodyweight.
const (
	firstWeightScaled = 14
	lastWeightScaled  = 23
)

func WeightScaled(slot int) bool {
	return slot >= firstWeightScaled && slot <= lastWeightScaled
}

type Record struct {
	Male   nutrients.Amount `json:"male" yaml:"male"`
	Female nutrients.Amount `json:"female" yaml:"female"`
	Colour string           `json:"colour" yaml:"colour"`
}

func (r Record) Target(s Sex) nutrients.Amount {
	if s == Female {
		return r.Female
	}
	return r.Male
}

// Table is the read-only RDI reference, index-aligned with nutrients.Slots.
type Table struct {
	records [nutrients.Count]Record
}

func NewTable(records [nutrients.Count]Record) *Table {
	return &Table{records: records}
}

func (t *Table) Record(slot int) Record {
	return t.records[slot]
}

// Targets returns the daily target of every slot for sex, with the
// bodyweight-scaled slots multiplied by weightKg.
func (t *Table) Targets(sex Sex, weightKg float64) nutrients.Vector {
	var v nutrients.Vector
	for i, r := range t.records {
		a := r.Target(sex)
		if a.Valid && WeightScaled(i) {
			a.Value *= weightKg
		}
		v[i] = a
	}
	return v
}

func rec(male, female float64, colour string) Record {
	return Record{Male: nutrients.Known(male), Female: nutrients.Known(female), Colour: colour}
}

var none = Record{Colour: NoColor}

// Default returns the built-in reference table.
func Default() *Table {
	return NewTable([nutrients.Count]Record{
		rec(2500, 2000, Limit), // Energy
		rec(3700, 2700, Goal),  // Water
		rec(400, 400, Limit),   // Caffeine
		rec(16, 16, Limit),     // Alcohol
		rec(130, 130, Goal),    // Carbohydrate
		rec(38, 25, Goal),      // Fibre
		none,                   // Starch
		rec(30, 30, Limit),     // Sugars
		rec(70, 70, Limit),     // Fat
		none,                   // Monounsaturated fat
		none,                   // Polyunsaturated fat
		rec(20, 20, Limit),     // Saturated fat
		rec(5, 5, Limit),       // Trans fat
		rec(300, 300, Limit),   // Cholesterol
		rec(0.8, 0.8, Goal),    // Protein, per kg from here to Valine
		rec(0.010, 0.010, Goal),
		rec(0.020, 0.020, Goal),
		rec(0.039, 0.039, Goal),
		rec(0.030, 0.030, Goal),
		rec(0.015, 0.015, Goal),
		rec(0.025, 0.025, Goal),
		rec(0.015, 0.015, Goal),
		rec(0.004, 0.004, Goal),
		rec(0.026, 0.026, Goal), // Valine
		rec(1.2, 1.1, Goal),     // Thiamin
		rec(1.3, 1.1, Goal),
		rec(16, 14, Goal),
		rec(5, 5, Goal),
		rec(1.3, 1.3, Goal),
		rec(400, 400, Goal),
		rec(2.4, 2.4, Goal),
		rec(550, 425, Goal),
		rec(3000, 2333, Goal),
		rec(90, 75, Goal),
		rec(800, 800, Goal),
		rec(15, 15, Goal),
		rec(120, 90, Goal),    // Vitamin K
		rec(1000, 1000, Goal), // Calcium
		rec(0.7, 0.7, Goal),
		rec(150, 150, Goal),
		rec(8, 18, Goal),
		rec(420, 320, Goal),
		rec(2.3, 1.8, Goal),
		rec(700, 700, Goal),
		rec(3400, 2600, Goal),
		rec(55, 55, Goal),
		rec(1500, 1500, Limit), // Sodium
		rec(11, 8, Goal),       // Zinc
	})
}

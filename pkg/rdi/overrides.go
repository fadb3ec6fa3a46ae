package rdi

import (
	"errors"
	"fmt"
	"os"

	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
	"github.com/tidwall/gjson"
)

var ErrUnknownNutrient = errors.New("unknown nutrient")

// WithOverrides returns a copy of t with targets replaced from a JSON object
// keyed by nutrient name:
//
//	{"Protein": {"male": 0.9, "female": 0.8, "colour": "#589A5D"}, "Starch": {"male": null}}
//
// Omitted fields keep their current value; null clears a target.
func (t *Table) WithOverrides(data []byte) (*Table, error) {
	if !gjson.Valid(string(data)) {
		return nil, fmt.Errorf("invalid RDI overrides json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("RDI overrides must be a json object")
	}

	out := *t
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		slot, ok := nutrients.Lookup(key.String())
		if !ok {
			err = fmt.Errorf("%w: %s", ErrUnknownNutrient, key.String())
			return false
		}
		r := out.records[slot.Index]
		if v := value.Get("male"); v.Exists() {
			r.Male = amountOf(v)
		}
		if v := value.Get("female"); v.Exists() {
			r.Female = amountOf(v)
		}
		if v := value.Get("colour"); v.Exists() {
			r.Colour = v.String()
		} else if v := value.Get("color"); v.Exists() {
			r.Colour = v.String()
		}
		out.records[slot.Index] = r
		return true
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadOverrides applies the overrides file at path to the default table.
func LoadOverrides(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Default().WithOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

func amountOf(v gjson.Result) nutrients.Amount {
	if v.Type == gjson.Null {
		return nutrients.Unknown
	}
	return nutrients.Known(v.Float())
}

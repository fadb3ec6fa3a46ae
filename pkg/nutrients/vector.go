package nutrients

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a nutrient quantity that may be unknown.
type Amount struct {
	Value float64
	Valid bool
}

// Unknown is the absent amount.
var Unknown = Amount{}

func Known(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// ParseAmount reads a dataset cell. Empty cells and NaN spellings are unknown.
func ParseAmount(cell string) (Amount, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "nan", "na", "null", "none":
		return Unknown, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return Unknown, err
	}
	if math.IsNaN(v) {
		return Unknown, nil
	}
	return Known(v), nil
}

// OrZero returns the value, or 0 when unknown.
func (a Amount) OrZero() float64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Unknown
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = Known(v)
	return nil
}

func (a Amount) MarshalYAML() (interface{}, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.Value, nil
}

// Vector holds one Amount per slot, in slot order.
type Vector [Count]Amount

// Zero returns a vector with every slot known and zero.
func Zero() Vector {
	var v Vector
	for i := range v {
		v[i] = Known(0)
	}
	return v
}

// Scale multiplies every known slot by f. Unknown slots stay unknown.
func (v Vector) Scale(f float64) Vector {
	for i, a := range v {
		if a.Valid {
			v[i].Value = a.Value * f
		}
	}
	return v
}

// FillUnknown replaces unknown slots with known zeros.
func (v Vector) FillUnknown() Vector {
	for i, a := range v {
		if !a.Valid {
			v[i] = Known(0)
		}
	}
	return v
}

// Add sums slot-wise. A slot is unknown if it is unknown on either side.
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		if !v[i].Valid || !o[i].Valid {
			v[i] = Unknown
			continue
		}
		v[i].Value += o[i].Value
	}
	return v
}

// KnownCount returns the number of populated slots.
func (v Vector) KnownCount() int {
	n := 0
	for _, a := range v {
		if a.Valid {
			n++
		}
	}
	return n
}

// Completeness is the percentage of populated slots, rounded to 2 decimals.
func (v Vector) Completeness() float64 {
	return math.Round(float64(v.KnownCount())/Count*100*100) / 100
}

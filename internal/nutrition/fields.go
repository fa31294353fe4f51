// Package nutrition defines the calculator's inputs, presets and derived metrics.
package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Default field values, used at first start and for missing snapshot fields.
const (
	DefaultWeight  = 150
	DefaultCal100  = 165
	DefaultFat100  = 3.6
	DefaultCarb100 = 0
	DefaultProt100 = 31
)

// Fields holds the five numeric inputs of the calculator.
// Composition values are per 100 g; Weight is in grams.
type Fields struct {
	Weight  float64
	Cal100  float64
	Fat100  float64
	Carb100 float64
	Prot100 float64
}

// Defaults returns the fields shown before anything was entered.
func Defaults() Fields {
	return Fields{
		Weight:  DefaultWeight,
		Cal100:  DefaultCal100,
		Fat100:  DefaultFat100,
		Carb100: DefaultCarb100,
		Prot100: DefaultProt100,
	}
}

// FieldID identifies one of the input fields.
type FieldID int

const (
	FieldWeight FieldID = iota
	FieldCal100
	FieldFat100
	FieldCarb100
	FieldProt100
)

// AllFields lists the fields in form order.
var AllFields = []FieldID{FieldWeight, FieldCal100, FieldFat100, FieldCarb100, FieldProt100}

// Label returns the form label for the field.
func (id FieldID) Label() string {
	switch id {
	case FieldWeight:
		return "Weight (g)"
	case FieldCal100:
		return "kcal / 100g"
	case FieldFat100:
		return "Fat / 100g (g)"
	case FieldCarb100:
		return "Carbs / 100g (g)"
	case FieldProt100:
		return "Protein / 100g (g)"
	default:
		return "unknown"
	}
}

// Key returns the snapshot/flag key for the field.
func (id FieldID) Key() string {
	switch id {
	case FieldWeight:
		return "weight"
	case FieldCal100:
		return "cal100"
	case FieldFat100:
		return "fat100"
	case FieldCarb100:
		return "carb100"
	case FieldProt100:
		return "prot100"
	default:
		return ""
	}
}

// Get returns the value of a field.
func (f Fields) Get(id FieldID) float64 {
	switch id {
	case FieldWeight:
		return f.Weight
	case FieldCal100:
		return f.Cal100
	case FieldFat100:
		return f.Fat100
	case FieldCarb100:
		return f.Carb100
	case FieldProt100:
		return f.Prot100
	default:
		return 0
	}
}

// Set returns a copy of f with one field replaced.
func (f Fields) Set(id FieldID, v float64) Fields {
	switch id {
	case FieldWeight:
		f.Weight = v
	case FieldCal100:
		f.Cal100 = v
	case FieldFat100:
		f.Fat100 = v
	case FieldCarb100:
		f.Carb100 = v
	case FieldProt100:
		f.Prot100 = v
	}
	return f
}

// ApplyPreset overwrites the four composition fields. Weight is kept.
func (f Fields) ApplyPreset(p Preset) Fields {
	f.Cal100 = p.Cal100
	f.Fat100 = p.Fat100
	f.Carb100 = p.Carb100
	f.Prot100 = p.Prot100
	return f
}

// ParseNumber coerces user input to a number.
// Empty or non-numeric input, NaN and infinities all become 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatNumber renders a field value for an input box, without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

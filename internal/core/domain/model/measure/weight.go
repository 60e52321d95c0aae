package measure

import "strings"

// WeightUnit is a canonical weight unit accepted by the carrier API.
type WeightUnit string

const (
	Ounce    WeightUnit = "ounce"
	Pound    WeightUnit = "pound"
	Gram     WeightUnit = "gram"
	Kilogram WeightUnit = "kilogram"
)

// Fixed conversion factors to ounces.
const (
	ouncesPerPound    = 16.0
	ouncesPerGram     = 0.03527396
	ouncesPerKilogram = 35.27396
)

// NormalizeWeightUnit maps the unit aliases seen in platform payloads
// (oz/ounce/ounces, lb/lbs/pound/pounds, g/gram/grams, kg/kilogram/kilograms)
// to a canonical WeightUnit. An empty input yields an empty unit; an
// unrecognized unit is passed through lowercased so the raw value still
// reaches the carrier API unchanged.
func NormalizeWeightUnit(raw string) WeightUnit {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch lower {
	case "":
		return ""
	case "oz", "ounce", "ounces":
		return Ounce
	case "lb", "lbs", "pound", "pounds":
		return Pound
	case "g", "gram", "grams":
		return Gram
	case "kg", "kilogram", "kilograms":
		return Kilogram
	default:
		return WeightUnit(lower)
	}
}

// Weight is a value with a canonical unit. The zero value carries no weight.
type Weight struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// NewWeight builds a Weight from a raw value and unit string. It returns
// false when the value is not strictly positive or the unit is empty; such
// inputs contribute zero weight rather than failing.
func NewWeight(value float64, unit string) (Weight, bool) {
	if !IsPositive(value) {
		return Weight{}, false
	}
	normalized := NormalizeWeightUnit(unit)
	if normalized == "" {
		return Weight{}, false
	}
	return Weight{Value: value, Unit: normalized}, true
}

// Ounces converts the weight to ounces using fixed factors. A non-positive
// value or missing unit yields zero; an unrecognized unit is assumed to be
// ounces already, matching the platform's own behavior.
func (w Weight) Ounces() float64 {
	if !IsPositive(w.Value) || w.Unit == "" {
		return 0
	}
	switch w.Unit {
	case Ounce:
		return w.Value
	case Pound:
		return w.Value * ouncesPerPound
	case Gram:
		return w.Value * ouncesPerGram
	case Kilogram:
		return w.Value * ouncesPerKilogram
	default:
		return w.Value
	}
}

// IsZero reports whether the weight carries no value.
func (w Weight) IsZero() bool {
	return !IsPositive(w.Value) || w.Unit == ""
}

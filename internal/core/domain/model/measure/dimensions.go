package measure

// DefaultDimensionUnit is used when a payload supplies a valid triple but
// no unit.
const DefaultDimensionUnit = "inch"

// Dimensions is a length/width/height triple. A triple is only usable when
// all three sides are strictly positive finite numbers; anything else is
// treated as absent and the configured default package takes over.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// NewDimensions validates a raw triple. It returns false when any side is
// non-positive or non-finite. An empty unit falls back to
// DefaultDimensionUnit.
func NewDimensions(length, width, height float64, unit string) (Dimensions, bool) {
	if !IsPositive(length) || !IsPositive(width) || !IsPositive(height) {
		return Dimensions{}, false
	}
	if unit == "" {
		unit = DefaultDimensionUnit
	}
	return Dimensions{Length: length, Width: width, Height: height, Unit: unit}, true
}

// Valid reports whether all three sides are strictly positive finite
// numbers.
func (d Dimensions) Valid() bool {
	return IsPositive(d.Length) && IsPositive(d.Width) && IsPositive(d.Height)
}

package spring

import "math"

// MapValueFromRangeToRange linearly maps value from [fromLow, fromHigh]
// onto [toLow, toHigh]. Values outside the source range extrapolate.
func MapValueFromRangeToRange(value, fromLow, fromHigh, toLow, toHigh float64) float64 {
	fromRangeSize := fromHigh - fromLow
	toRangeSize := toHigh - toLow
	valueScale := (value - fromLow) / fromRangeSize
	return toLow + (valueScale * toRangeSize)
}

// Clamp limits value to [low, high].
func Clamp(value, low, high float64) float64 {
	return math.Min(math.Max(value, low), high)
}

package spring

// Conversions between Origami patch values and raw spring constants.
// Zero maps to zero in both directions so a coasting config survives a
// round trip.

func TensionFromOrigamiValue(v float64) float64 {
	if v == 0 {
		return 0
	}
	return (v-30.0)*3.62 + 194.0
}

func OrigamiValueFromTension(tension float64) float64 {
	if tension == 0 {
		return 0
	}
	return (tension-194.0)/3.62 + 30.0
}

func FrictionFromOrigamiValue(v float64) float64 {
	if v == 0 {
		return 0
	}
	return (v-8.0)*3.0 + 25.0
}

func OrigamiValueFromFriction(friction float64) float64 {
	if friction == 0 {
		return 0
	}
	return (friction-25.0)/3.0 + 8.0
}

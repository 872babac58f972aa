package ui

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/olivier-w/rebound/internal/spring"
)

// wanderer drifts a target across a range along smooth noise.
type wanderer struct {
	noise opensimplex.Noise
	t     float64
	step  float64
}

func newWanderer(seed int64) *wanderer {
	return &wanderer{noise: opensimplex.NewNormalized(seed), step: 0.15}
}

// next advances along the noise and returns a value in [low, high].
func (w *wanderer) next(low, high float64) float64 {
	w.t += w.step
	n := octaveNoise(w.noise, w.t, 0, 3, 1, 0.5)
	return spring.Clamp(spring.MapValueFromRangeToRange(n, 0, 1, low, high), low, high)
}

// octaveNoise layers frequencies of normalized noise, staying in [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for range octaves {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

package visualizer

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/olivier-w/rebound/internal/spring"
)

// Reference is the closed-form motion of a unit mass on a spring config,
// sampled once per frame. It is drawn as a ghost next to the integrated
// trace.
type Reference struct {
	spring    harmonica.Spring
	frequency float64
	damping   float64
}

// NewReference maps tension to angular frequency sqrt(k) and friction to
// the damping ratio c / (2 sqrt(k)).
func NewReference(fps int, c spring.Config) Reference {
	var frequency, damping float64
	if c.Tension > 0 {
		frequency = math.Sqrt(c.Tension)
		damping = c.Friction / (2 * frequency)
	}
	return Reference{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frequency: frequency,
		damping:   damping,
	}
}

func (r Reference) AngularFrequency() float64 { return r.frequency }
func (r Reference) DampingRatio() float64     { return r.damping }

// Trace returns the positions of the next frames frames of a spring that
// starts at from with the given velocity and settles on target.
func (r Reference) Trace(from, velocity, target float64, frames int) []float64 {
	if frames <= 0 {
		return nil
	}
	out := make([]float64, frames)
	pos, vel := from, velocity
	for i := range out {
		pos, vel = r.spring.Update(pos, vel, target)
		out[i] = pos
	}
	return out
}

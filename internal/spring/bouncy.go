package spring

import "math"

// BouncyConversion converts the speed and bounciness parameters of a POP
// animation into Origami tension and friction.
type BouncyConversion struct {
	speed      float64
	bounciness float64
	tension    float64
	friction   float64
}

func NewBouncyConversion(speed, bounciness float64) BouncyConversion {
	b := normalize(bounciness/1.7, 0, 20.0)
	b = projectNormal(b, 0.0, 0.8)
	s := normalize(speed/1.7, 0, 20.0)
	tension := projectNormal(s, 0.5, 200)
	return BouncyConversion{
		speed:      speed,
		bounciness: bounciness,
		tension:    tension,
		friction:   quadraticOutInterpolation(b, noBounceFriction(tension), 0.01),
	}
}

func (c BouncyConversion) Speed() float64      { return c.speed }
func (c BouncyConversion) Bounciness() float64 { return c.bounciness }

// Tension is in Origami units.
func (c BouncyConversion) Tension() float64 { return c.tension }

// Friction is in Origami units.
func (c BouncyConversion) Friction() float64 { return c.friction }

func normalize(value, start, end float64) float64 {
	return (value - start) / (end - start)
}

func projectNormal(n, start, end float64) float64 {
	return start + (n * (end - start))
}

func linearInterpolation(t, start, end float64) float64 {
	return t*end + (1.0-t)*start
}

func quadraticOutInterpolation(t, start, end float64) float64 {
	return linearInterpolation(2*t-t*t, start, end)
}

// noBounceFriction is a piecewise cubic fit of the friction that yields a
// critically damped spring for the given Origami tension.
func noBounceFriction(tension float64) float64 {
	switch {
	case tension <= 18:
		return 0.0007*math.Pow(tension, 3) - 0.031*math.Pow(tension, 2) + 0.64*tension + 1.28
	case tension <= 44:
		return 0.000044*math.Pow(tension, 3) - 0.006*math.Pow(tension, 2) + 0.36*tension + 2.0
	default:
		return 0.00000045*math.Pow(tension, 3) - 0.000332*math.Pow(tension, 2) + 0.1078*tension + 5.84
	}
}

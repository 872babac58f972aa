package spring

// Config holds the physical constants of a spring. Configs are plain
// values: two configs with equal fields behave identically.
type Config struct {
	Tension  float64
	Friction float64
}

// DefaultConfig is used by springs that never had a config set.
var DefaultConfig = FromOrigamiTensionAndFriction(40, 7)

// NewConfig returns a Config with raw tension and friction.
func NewConfig(tension, friction float64) Config {
	return Config{Tension: tension, Friction: friction}
}

// CoastingConfig returns a zero-tension config. A spring with this config
// decelerates under friction alone and settles wherever it stops, which
// suits fling gestures.
func CoastingConfig(friction float64) Config {
	return Config{Friction: friction}
}

// FromOrigamiTensionAndFriction maps tension and friction as entered in
// Origami / Quartz Composer to raw physical constants.
func FromOrigamiTensionAndFriction(tension, friction float64) Config {
	return Config{
		Tension:  TensionFromOrigamiValue(tension),
		Friction: FrictionFromOrigamiValue(friction),
	}
}

// FromBouncinessAndSpeed maps the bounciness and speed of an Origami POP
// animation to raw physical constants.
func FromBouncinessAndSpeed(bounciness, speed float64) Config {
	bc := NewBouncyConversion(speed, bounciness)
	return FromOrigamiTensionAndFriction(bc.Tension(), bc.Friction())
}

// Origami returns the config expressed in Origami tension and friction.
func (c Config) Origami() (tension, friction float64) {
	return OrigamiValueFromTension(c.Tension), OrigamiValueFromFriction(c.Friction)
}

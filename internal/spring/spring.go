package spring

import (
	"math"

	"github.com/google/uuid"
)

const (
	// SolverTimestep is the fixed RK4 sub-step in seconds. Every trajectory
	// depends on it, so it is part of the package contract.
	SolverTimestep = 0.001

	// MaxDeltaTime caps the simulated time of a single Advance, in seconds,
	// so a stalled frame does not fling the spring.
	MaxDeltaTime = 0.064

	DefaultRestSpeedThreshold        = 0.005
	DefaultRestDisplacementThreshold = 0.005
)

type physicsState struct {
	position float64
	velocity float64
}

// Spring integrates one damped harmonic oscillator toward its end value.
// Springs are created by a System and advanced by its loop.
type Spring struct {
	id     string
	system *System

	config            Config
	overshootClamping bool

	current  physicsState
	previous physicsState
	// probe is the intermediate state of the last RK4 stage. The first
	// stage of the next sub-step samples its position.
	probe physicsState

	startValue float64
	endValue   float64
	wasAtRest  bool

	restSpeedThreshold        float64
	restDisplacementThreshold float64

	timeAccumulator float64
	listeners       listenerSet[Listener]
	destroyed       bool
}

func newSpring(sys *System) *Spring {
	return &Spring{
		id:                        uuid.NewString(),
		system:                    sys,
		config:                    DefaultConfig,
		wasAtRest:                 true,
		restSpeedThreshold:        DefaultRestSpeedThreshold,
		restDisplacementThreshold: DefaultRestDisplacementThreshold,
	}
}

// ID returns the unique id assigned at creation.
func (s *Spring) ID() string { return s.id }

// IsDestroyed reports whether Destroy has been called.
func (s *Spring) IsDestroyed() bool { return s.destroyed }

func (s *Spring) mustBeAlive(op string) {
	if s.destroyed {
		misuse(ErrDestroyed, "%s on spring %s", op, s.id)
	}
}

// Destroy removes all listeners and deregisters the spring from its
// system. Any further mutation panics.
func (s *Spring) Destroy() {
	s.mustBeAlive("Destroy")
	s.listeners.clear()
	s.system.DeregisterSpring(s)
	s.destroyed = true
}

func (s *Spring) SetConfig(c Config) *Spring {
	s.mustBeAlive("SetConfig")
	s.config = c
	return s
}

func (s *Spring) Config() Config {
	s.mustBeAlive("Config")
	return s.config
}

// SetCurrentValue moves the spring to v and settles it there: the end
// value becomes v and the velocity zero. Listeners see one update.
func (s *Spring) SetCurrentValue(v float64) *Spring {
	s.mustBeAlive("SetCurrentValue")
	return s.setCurrentValue(v, true)
}

// Reposition moves the spring to v without settling it. Velocity and end
// value are kept, so the spring carries on animating from v.
func (s *Spring) Reposition(v float64) *Spring {
	s.mustBeAlive("Reposition")
	return s.setCurrentValue(v, false)
}

func (s *Spring) setCurrentValue(v float64, settle bool) *Spring {
	s.startValue = v
	s.current.position = v
	for _, l := range s.listeners.snapshot() {
		if s.destroyed {
			return s
		}
		l.OnSpringUpdate(s)
	}
	if s.destroyed {
		return s
	}
	if settle {
		s.SetAtRest()
		// A resting spring stays put. A moving one still owes its
		// listeners a final pass and OnSpringAtRest.
		if s.wasAtRest {
			return s
		}
	}
	s.system.ActivateSpring(s.id)
	return s
}

// The getters below panic with ErrDestroyed once the spring is
// destroyed. Use IsDestroyed to check first.

func (s *Spring) CurrentValue() float64 {
	s.mustBeAlive("CurrentValue")
	return s.current.position
}

func (s *Spring) StartValue() float64 {
	s.mustBeAlive("StartValue")
	return s.startValue
}

func (s *Spring) EndValue() float64 {
	s.mustBeAlive("EndValue")
	return s.endValue
}

func (s *Spring) Velocity() float64 {
	s.mustBeAlive("Velocity")
	return s.current.velocity
}

// CurrentDisplacement is the distance between the current and end value.
func (s *Spring) CurrentDisplacement() float64 {
	s.mustBeAlive("CurrentDisplacement")
	return s.displacement(s.current)
}

func (s *Spring) displacement(state physicsState) float64 {
	return math.Abs(s.endValue - state.position)
}

// SetEndValue retargets the spring. A changed end value notifies
// OnSpringEndStateChange and activates the spring.
func (s *Spring) SetEndValue(v float64) *Spring {
	s.mustBeAlive("SetEndValue")
	if s.endValue == v {
		if s.shouldAdvance() {
			s.system.ActivateSpring(s.id)
		}
		return s
	}
	s.startValue = s.current.position
	s.endValue = v
	for _, l := range s.listeners.snapshot() {
		if s.destroyed {
			return s
		}
		l.OnSpringEndStateChange(s)
	}
	if s.destroyed {
		return s
	}
	s.system.ActivateSpring(s.id)
	return s
}

// SetVelocity sets the velocity in units per second. A changed velocity
// activates the spring even when it sits on its end value.
func (s *Spring) SetVelocity(v float64) *Spring {
	s.mustBeAlive("SetVelocity")
	if v == s.current.velocity {
		return s
	}
	s.current.velocity = v
	s.system.ActivateSpring(s.id)
	return s
}

func (s *Spring) SetRestSpeedThreshold(v float64) *Spring {
	s.mustBeAlive("SetRestSpeedThreshold")
	s.restSpeedThreshold = v
	return s
}

func (s *Spring) RestSpeedThreshold() float64 {
	s.mustBeAlive("RestSpeedThreshold")
	return s.restSpeedThreshold
}

func (s *Spring) SetRestDisplacementThreshold(v float64) *Spring {
	s.mustBeAlive("SetRestDisplacementThreshold")
	s.restDisplacementThreshold = v
	return s
}

func (s *Spring) RestDisplacementThreshold() float64 {
	s.mustBeAlive("RestDisplacementThreshold")
	return s.restDisplacementThreshold
}

// SetOvershootClamping makes the spring snap to its end value the first
// time it crosses it instead of oscillating.
func (s *Spring) SetOvershootClamping(enabled bool) *Spring {
	s.mustBeAlive("SetOvershootClamping")
	s.overshootClamping = enabled
	return s
}

func (s *Spring) OvershootClamping() bool {
	s.mustBeAlive("OvershootClamping")
	return s.overshootClamping
}

// IsOvershooting reports whether the current value has crossed the end
// value coming from the start value. Coasting springs never overshoot.
func (s *Spring) IsOvershooting() bool {
	s.mustBeAlive("IsOvershooting")
	return s.isOvershooting()
}

func (s *Spring) isOvershooting() bool {
	position := s.current.position
	return s.config.Tension > 0 &&
		((s.startValue < s.endValue && position > s.endValue) ||
			(s.startValue > s.endValue && position < s.endValue))
}

// IsAtRest reports whether both velocity and displacement are within the
// rest thresholds. Displacement is ignored for zero tension.
func (s *Spring) IsAtRest() bool {
	s.mustBeAlive("IsAtRest")
	return s.isAtRest()
}

func (s *Spring) isAtRest() bool {
	return math.Abs(s.current.velocity) <= s.restSpeedThreshold &&
		(s.displacement(s.current) <= s.restDisplacementThreshold || s.config.Tension == 0)
}

// SetAtRest stops the spring where it is. The next system pass delivers a
// final update and OnSpringAtRest.
func (s *Spring) SetAtRest() *Spring {
	s.mustBeAlive("SetAtRest")
	s.endValue = s.current.position
	s.probe.position = s.current.position
	s.current.velocity = 0
	return s
}

// CurrentValueIsApproximately reports whether v is within the rest
// displacement threshold of the current value.
func (s *Spring) CurrentValueIsApproximately(v float64) bool {
	s.mustBeAlive("CurrentValueIsApproximately")
	return math.Abs(s.current.position-v) <= s.restDisplacementThreshold
}

// shouldAdvance is false once the spring is at rest on its end value and
// listeners have been told so. A resting spring retargeted within the rest
// threshold still needs a pass to snap onto the new end value.
func (s *Spring) shouldAdvance() bool {
	return !s.isAtRest() || !s.wasAtRest || s.current.position != s.endValue
}

// Advance integrates the spring over dt seconds. It is normally called by
// System.Loop. Time that does not fill a whole SolverTimestep is carried
// over to the next call and the visible state is interpolated between the
// last two sub-steps.
func (s *Spring) Advance(dt float64) {
	s.mustBeAlive("Advance")
	if !s.shouldAdvance() {
		return
	}
	isAtRest := s.isAtRest()

	adjusted := dt
	if dt > MaxDeltaTime {
		adjusted = MaxDeltaTime
	}
	s.timeAccumulator += adjusted

	tension := s.config.Tension
	friction := s.config.Friction
	end := s.endValue

	position := s.current.position
	velocity := s.current.velocity
	probePosition := s.probe.position
	probeVelocity := s.probe.velocity

	for s.timeAccumulator >= SolverTimestep {
		s.timeAccumulator -= SolverTimestep
		if s.timeAccumulator < SolverTimestep {
			s.previous = physicsState{position: position, velocity: velocity}
		}

		aVelocity := velocity
		aAcceleration := tension*(end-probePosition) - friction*velocity

		probePosition = position + aVelocity*SolverTimestep*0.5
		probeVelocity = velocity + aAcceleration*SolverTimestep*0.5
		bVelocity := probeVelocity
		bAcceleration := tension*(end-probePosition) - friction*probeVelocity

		probePosition = position + bVelocity*SolverTimestep*0.5
		probeVelocity = velocity + bAcceleration*SolverTimestep*0.5
		cVelocity := probeVelocity
		cAcceleration := tension*(end-probePosition) - friction*probeVelocity

		probePosition = position + cVelocity*SolverTimestep
		probeVelocity = velocity + cAcceleration*SolverTimestep
		dVelocity := probeVelocity
		dAcceleration := tension*(end-probePosition) - friction*probeVelocity

		dxdt := 1.0 / 6.0 * (aVelocity + 2.0*(bVelocity+cVelocity) + dVelocity)
		dvdt := 1.0 / 6.0 * (aAcceleration + 2.0*(bAcceleration+cAcceleration) + dAcceleration)

		position += dxdt * SolverTimestep
		velocity += dvdt * SolverTimestep
	}

	s.probe = physicsState{position: probePosition, velocity: probeVelocity}
	s.current = physicsState{position: position, velocity: velocity}

	if s.timeAccumulator > 0 {
		s.interpolate(s.timeAccumulator / SolverTimestep)
	}

	// A spring that began the pass at rest is told it is at rest, so it
	// must also land on its end value.
	if isAtRest || s.isAtRest() || (s.overshootClamping && s.isOvershooting()) {
		if tension > 0 {
			s.startValue = s.endValue
			s.current.position = s.endValue
		} else {
			s.endValue = s.current.position
			s.startValue = s.endValue
		}
		s.current.velocity = 0
		isAtRest = true
	}

	notifyActivate := false
	if s.wasAtRest {
		s.wasAtRest = false
		notifyActivate = true
	}
	notifyAtRest := false
	if isAtRest {
		s.wasAtRest = true
		notifyAtRest = true
	}

	for _, l := range s.listeners.snapshot() {
		if notifyActivate && !s.destroyed {
			l.OnSpringActivate(s)
		}
		if !s.destroyed {
			l.OnSpringUpdate(s)
		}
		if notifyAtRest && !s.destroyed {
			l.OnSpringAtRest(s)
		}
		if s.destroyed {
			return
		}
	}
}

func (s *Spring) interpolate(alpha float64) {
	s.current.position = s.current.position*alpha + s.previous.position*(1-alpha)
	s.current.velocity = s.current.velocity*alpha + s.previous.velocity*(1-alpha)
}

// AddListener registers l. Adding a listener twice has no effect.
func (s *Spring) AddListener(l Listener) *Spring {
	s.mustBeAlive("AddListener")
	if l == nil {
		misuse(ErrNilListener, "AddListener on spring %s", s.id)
	}
	s.listeners.add(l)
	return s
}

func (s *Spring) RemoveListener(l Listener) *Spring {
	s.mustBeAlive("RemoveListener")
	if l == nil {
		misuse(ErrNilListener, "RemoveListener on spring %s", s.id)
	}
	s.listeners.remove(l)
	return s
}

func (s *Spring) RemoveAllListeners() *Spring {
	s.mustBeAlive("RemoveAllListeners")
	s.listeners.clear()
	return s
}

package spring

import "time"

// Looper is the frame source of a System. The system calls Start when a
// spring becomes active and Stop once everything has settled; in between
// the looper calls System.Loop with the time elapsed since the previous
// frame.
type Looper interface {
	Start(sys *System)
	Stop()
}

// SixtyFPS is the frame interval of a 60 Hz display.
const SixtyFPS = 16666700 * time.Nanosecond

// SteppingLooper advances its system only when Step is called. It suits
// tests and callers that own their own frame clock.
type SteppingLooper struct {
	sys     *System
	running bool
	elapsed time.Duration
}

func (l *SteppingLooper) Start(sys *System) {
	l.sys = sys
	l.running = true
	l.elapsed = 0
}

func (l *SteppingLooper) Stop() { l.running = false }

// Running reports whether the system has asked for frames.
func (l *SteppingLooper) Running() bool { return l.running }

// Elapsed is the simulated time since the last Start.
func (l *SteppingLooper) Elapsed() time.Duration { return l.elapsed }

// Step runs one frame of the given length and reports whether the system
// still wants frames afterwards. It does nothing while stopped.
func (l *SteppingLooper) Step(interval time.Duration) bool {
	if l.sys == nil || !l.running {
		return false
	}
	l.elapsed += interval
	l.sys.Loop(interval)
	return l.running
}

// SynchronousLooper runs the system to rest inside Start, one fixed
// TimeStep per frame. Useful for rendering a whole trajectory headless.
type SynchronousLooper struct {
	// TimeStep defaults to SixtyFPS.
	TimeStep time.Duration
	// MaxFrames bounds a run; zero means unbounded. A spring without
	// friction never settles.
	MaxFrames int

	running bool
	frames  int
}

func (l *SynchronousLooper) Start(sys *System) {
	if l.running {
		return
	}
	step := l.TimeStep
	if step <= 0 {
		step = SixtyFPS
	}
	l.running = true
	l.frames = 0
	for l.running && !sys.IsIdle() {
		if l.MaxFrames > 0 && l.frames >= l.MaxFrames {
			break
		}
		sys.Loop(step)
		l.frames++
	}
	l.running = false
}

func (l *SynchronousLooper) Stop() { l.running = false }

// Frames returns how many frames the last run took.
func (l *SynchronousLooper) Frames() int { return l.frames }

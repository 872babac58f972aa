package spring

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// System owns a set of springs and integrates the active ones every time
// its Looper calls Loop. The looper only runs while at least one spring is
// moving.
//
// Registry and active-set changes are safe from any goroutine, and
// listeners may create, activate or destroy springs while a pass is
// running. Spring state itself is not synchronized: mutate springs from the
// goroutine that drives Loop.
type System struct {
	looper Looper
	logger *slog.Logger

	mu        sync.Mutex
	registry  map[string]*Spring
	active    []*Spring
	activeSet map[*Spring]struct{}
	idle      bool

	listeners listenerSet[SystemListener]
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used for lifecycle debug messages.
func WithLogger(l *slog.Logger) Option {
	return func(sys *System) {
		if l != nil {
			sys.logger = l
		}
	}
}

// NewSystem creates an idle System driven by looper.
func NewSystem(looper Looper, opts ...Option) *System {
	if looper == nil {
		misuse(ErrNilLooper, "NewSystem")
	}
	sys := &System{
		looper:    looper,
		logger:    slog.New(slog.DiscardHandler),
		registry:  make(map[string]*Spring),
		activeSet: make(map[*Spring]struct{}),
		idle:      true,
	}
	for _, opt := range opts {
		opt(sys)
	}
	return sys
}

// IsIdle reports whether no spring needs integration.
func (sys *System) IsIdle() bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return sys.idle
}

// CreateSpring returns a new registered spring at rest at zero with the
// default config.
func (sys *System) CreateSpring() *Spring {
	s := newSpring(sys)
	sys.RegisterSpring(s)
	return s
}

// SpringByID looks up a registered spring. Unknown ids, including the
// empty string, report false.
func (sys *System) SpringByID(id string) (*Spring, bool) {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	s, ok := sys.registry[id]
	return s, ok
}

// AllSprings returns a snapshot of the registered springs in no
// particular order.
func (sys *System) AllSprings() []*Spring {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	out := make([]*Spring, 0, len(sys.registry))
	for _, s := range sys.registry {
		out = append(out, s)
	}
	return out
}

// RegisterSpring adds s to the registry. Registering an id twice panics.
func (sys *System) RegisterSpring(s *Spring) {
	if s == nil {
		misuse(ErrNilSpring, "RegisterSpring")
	}
	sys.mu.Lock()
	if _, ok := sys.registry[s.id]; ok {
		sys.mu.Unlock()
		misuse(ErrDuplicateSpring, "id %s", s.id)
	}
	sys.registry[s.id] = s
	sys.mu.Unlock()
	sys.logger.Debug("spring registered", "id", s.id)
}

// DeregisterSpring removes s from the registry and the active set. The
// spring must not be used afterwards; Spring.Destroy calls this.
func (sys *System) DeregisterSpring(s *Spring) {
	if s == nil {
		misuse(ErrNilSpring, "DeregisterSpring")
	}
	sys.mu.Lock()
	sys.deactivateLocked(s)
	delete(sys.registry, s.id)
	sys.mu.Unlock()
	sys.logger.Debug("spring deregistered", "id", s.id)
}

// ActivateSpring queues the spring for integration and starts the looper
// if the system was idle. Springs call this themselves when they are set
// in motion.
func (sys *System) ActivateSpring(id string) {
	sys.mu.Lock()
	s, ok := sys.registry[id]
	if !ok {
		sys.mu.Unlock()
		misuse(ErrUnknownSpring, "activate %q", id)
	}
	if _, ok := sys.activeSet[s]; !ok {
		sys.activeSet[s] = struct{}{}
		sys.active = append(sys.active, s)
	}
	wasIdle := sys.idle
	sys.idle = false
	sys.mu.Unlock()

	if wasIdle {
		sys.logger.Debug("spring system running", "trigger", id)
		sys.looper.Start(sys)
	}
}

// Loop runs one integration pass over elapsed wall-clock time. It is
// called by the Looper once per frame.
func (sys *System) Loop(elapsed time.Duration) {
	for _, l := range sys.listeners.snapshot() {
		l.BeforeIntegrate(sys)
	}

	sys.advance(elapsed.Seconds())

	sys.mu.Lock()
	becameIdle := !sys.idle && len(sys.active) == 0
	if len(sys.active) == 0 {
		sys.idle = true
	}
	sys.mu.Unlock()
	if becameIdle {
		sys.logger.Debug("spring system idle")
	}

	for _, l := range sys.listeners.snapshot() {
		l.AfterIntegrate(sys)
	}

	// An AfterIntegrate listener may have set a spring in motion again.
	if sys.IsIdle() {
		sys.looper.Stop()
	}
}

func (sys *System) advance(dt float64) {
	sys.mu.Lock()
	pass := slices.Clone(sys.active)
	sys.mu.Unlock()

	for _, s := range pass {
		if sys.owns(s) && s.shouldAdvance() {
			s.Advance(dt)
		}
		if !sys.owns(s) || !s.shouldAdvance() {
			sys.mu.Lock()
			sys.deactivateLocked(s)
			sys.mu.Unlock()
		}
	}
}

func (sys *System) owns(s *Spring) bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return sys.registry[s.id] == s
}

func (sys *System) deactivateLocked(s *Spring) {
	if _, ok := sys.activeSet[s]; !ok {
		return
	}
	delete(sys.activeSet, s)
	if i := slices.Index(sys.active, s); i >= 0 {
		sys.active = slices.Delete(sys.active, i, i+1)
	}
}

// ActiveCount returns the number of springs queued for integration.
func (sys *System) ActiveCount() int {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return len(sys.active)
}

func (sys *System) AddListener(l SystemListener) {
	if l == nil {
		misuse(ErrNilListener, "System.AddListener")
	}
	sys.listeners.add(l)
}

func (sys *System) RemoveListener(l SystemListener) {
	if l == nil {
		misuse(ErrNilListener, "System.RemoveListener")
	}
	sys.listeners.remove(l)
}

func (sys *System) RemoveAllListeners() {
	sys.listeners.clear()
}

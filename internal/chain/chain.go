package chain

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/olivier-w/rebound/internal/spring"
)

// ErrIndexOutOfRange is wrapped by the panic of SetControlSpringIndex.
var ErrIndexOutOfRange = errors.New("control spring index out of range")

const (
	defaultMainTension        = 40
	defaultMainFriction       = 6
	defaultAttachmentTension  = 70
	defaultAttachmentFriction = 10
)

// registrySeq numbers the config names a chain registers.
var registrySeq atomic.Int64

// Chain links springs in index order. The control spring is driven from
// outside and every update pulls its neighbours away from the control
// index toward the updated value, so motion cascades down the chain one
// frame per link.
type Chain struct {
	system     *spring.System
	main       spring.Config
	attachment spring.Config

	springs      []*spring.Spring
	listeners    []spring.Listener
	controlIndex int
}

type settings struct {
	main       spring.Config
	attachment spring.Config
	registry   *spring.ConfigRegistry
	logger     *slog.Logger
}

// Option configures a Chain.
type Option func(*settings)

// WithMainConfig sets the config of the control spring.
func WithMainConfig(c spring.Config) Option {
	return func(s *settings) { s.main = c }
}

// WithAttachmentConfig sets the config of every other spring.
func WithAttachmentConfig(c spring.Config) Option {
	return func(s *settings) { s.attachment = c }
}

// WithOrigamiValues sets both configs from Origami tension and friction.
func WithOrigamiValues(mainTension, mainFriction, attachmentTension, attachmentFriction float64) Option {
	return func(s *settings) {
		s.main = spring.FromOrigamiTensionAndFriction(mainTension, mainFriction)
		s.attachment = spring.FromOrigamiTensionAndFriction(attachmentTension, attachmentFriction)
	}
}

// WithRegistry publishes both configs in r for live tuning.
func WithRegistry(r *spring.ConfigRegistry) Option {
	return func(s *settings) { s.registry = r }
}

// WithLogger is passed on to the chain's system.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New creates an empty chain with its own System driven by looper.
func New(looper spring.Looper, opts ...Option) *Chain {
	s := settings{
		main:       spring.FromOrigamiTensionAndFriction(defaultMainTension, defaultMainFriction),
		attachment: spring.FromOrigamiTensionAndFriction(defaultAttachmentTension, defaultAttachmentFriction),
	}
	for _, opt := range opts {
		opt(&s)
	}

	if s.registry != nil {
		n := registrySeq.Add(2) - 2
		s.registry.Add(fmt.Sprintf("main spring %d", n), s.main)
		s.registry.Add(fmt.Sprintf("attachment spring %d", n+1), s.attachment)
	}

	var sysOpts []spring.Option
	if s.logger != nil {
		sysOpts = append(sysOpts, spring.WithLogger(s.logger))
	}
	return &Chain{
		system:       spring.NewSystem(looper, sysOpts...),
		main:         s.main,
		attachment:   s.attachment,
		controlIndex: -1,
	}
}

func (c *Chain) System() *spring.System          { return c.system }
func (c *Chain) MainConfig() spring.Config       { return c.main }
func (c *Chain) AttachmentConfig() spring.Config { return c.attachment }

// AddSpring appends a spring with the attachment config. Its events are
// forwarded to l after the chain has pulled the neighbours; l may be nil.
func (c *Chain) AddSpring(l spring.Listener) *Chain {
	idx := len(c.springs)
	s := c.system.CreateSpring().SetConfig(c.attachment)
	s.AddListener(&link{chain: c, index: idx})
	c.springs = append(c.springs, s)
	c.listeners = append(c.listeners, l)
	return c
}

// SetControlSpringIndex makes the spring at i the control spring. It gets
// the main config and every other spring the attachment config. An index
// outside the chain panics.
func (c *Chain) SetControlSpringIndex(i int) *Chain {
	if i < 0 || i >= len(c.springs) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.springs)))
	}
	c.controlIndex = i
	for _, s := range c.springs {
		s.SetConfig(c.attachment)
	}
	c.springs[i].SetConfig(c.main)
	return c
}

// SetMainConfig retunes the control spring.
func (c *Chain) SetMainConfig(cfg spring.Config) *Chain {
	c.main = cfg
	if s := c.ControlSpring(); s != nil {
		s.SetConfig(cfg)
	}
	return c
}

// SetAttachmentConfig retunes every spring but the control spring.
func (c *Chain) SetAttachmentConfig(cfg spring.Config) *Chain {
	c.attachment = cfg
	for i, s := range c.springs {
		if i != c.controlIndex {
			s.SetConfig(cfg)
		}
	}
	return c
}

// ControlIndex returns -1 until a control spring is set.
func (c *Chain) ControlIndex() int { return c.controlIndex }

// ControlSpring returns nil until a control spring is set.
func (c *Chain) ControlSpring() *spring.Spring {
	if c.controlIndex < 0 {
		return nil
	}
	return c.springs[c.controlIndex]
}

// AllSprings returns the springs in chain order.
func (c *Chain) AllSprings() []*spring.Spring {
	out := make([]*spring.Spring, len(c.springs))
	copy(out, c.springs)
	return out
}

func (c *Chain) Len() int { return len(c.springs) }

// link is the listener a chain installs on each of its springs.
type link struct {
	chain *Chain
	index int
}

func (k *link) forward() spring.Listener {
	return k.chain.listeners[k.index]
}

func (k *link) OnSpringUpdate(s *spring.Spring) {
	c := k.chain
	above, below := -1, -1
	if k.index >= c.controlIndex {
		above = k.index + 1
	}
	if k.index <= c.controlIndex {
		below = k.index - 1
	}
	if above >= 0 && above < len(c.springs) {
		c.springs[above].SetEndValue(s.CurrentValue())
	}
	if below >= 0 && below < len(c.springs) {
		c.springs[below].SetEndValue(s.CurrentValue())
	}
	if l := k.forward(); l != nil {
		l.OnSpringUpdate(s)
	}
}

func (k *link) OnSpringActivate(s *spring.Spring) {
	if l := k.forward(); l != nil {
		l.OnSpringActivate(s)
	}
}

func (k *link) OnSpringAtRest(s *spring.Spring) {
	if l := k.forward(); l != nil {
		l.OnSpringAtRest(s)
	}
}

func (k *link) OnSpringEndStateChange(s *spring.Spring) {
	if l := k.forward(); l != nil {
		l.OnSpringEndStateChange(s)
	}
}

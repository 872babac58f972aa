package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/rebound/internal/chain"
	"github.com/olivier-w/rebound/internal/driver"
	"github.com/olivier-w/rebound/internal/spring"
	"github.com/olivier-w/rebound/internal/store"
	"github.com/olivier-w/rebound/internal/visualizer"
)

const (
	historySize = 240
	plotHeight  = 8
	rangeLow    = 0.0
	rangeHigh   = 100.0
)

type preset struct {
	name       string
	bounciness float64
	speed      float64
}

var presets = []preset{
	{name: "gentle", bounciness: 0, speed: 12},
	{name: "bouncy", bounciness: 10, speed: 20},
	{name: "snappy", bounciness: 3, speed: 40},
	{name: "wobbly", bounciness: 18, speed: 6},
}

// Options configures the playground.
type Options struct {
	Springs int
	FPS     int
	// Main overrides the control spring config when set.
	Main *spring.Config
	// Registry holds the configs offered by the picker. A fresh one is
	// created when nil.
	Registry *spring.ConfigRegistry
	// Store persists saved configs; nil keeps them in memory only.
	Store  *store.Store
	Logger *slog.Logger
	Seed   int64
}

type chainStats struct {
	settles int
}

// Model is the Bubbletea model for the spring playground.
type Model struct {
	chain    *chain.Chain
	frame    *driver.Frame
	registry *spring.ConfigRegistry
	store    *store.Store
	logger   *slog.Logger
	stats    *chainStats
	fps      int

	modes   []visualizer.Visualizer
	mode    int
	history *visualizer.History
	ghost   *visualizer.History
	// ghostTrace is the reference motion since the last retarget.
	ghostTrace []float64
	ghostIdx   int

	target    float64
	clamp     bool
	preset    string
	seed      int64
	wander    *wanderer
	width     int
	height    int
	quitting  bool
	lastSaved time.Time

	status     string    // transient status message
	statusTime time.Time // when status was set

	picking bool
	picker  pickerModel
	naming  bool
	input   textinput.Model

	keys keyMap
	help help.Model
}

// New builds a chain of springs driven by Bubbletea frames. The middle
// spring is the control spring and starts moving toward the middle of
// the range.
func New(opts Options) Model {
	if opts.Springs < 1 {
		opts.Springs = 1
	}
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	if opts.Registry == nil {
		opts.Registry = spring.NewConfigRegistry(true)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	frame := driver.NewFrame(opts.FPS)
	chainOpts := []chain.Option{chain.WithRegistry(opts.Registry), chain.WithLogger(opts.Logger)}
	if opts.Main != nil {
		chainOpts = append(chainOpts, chain.WithMainConfig(*opts.Main))
	}
	c := chain.New(frame, chainOpts...)

	stats := &chainStats{}
	for range opts.Springs {
		c.AddSpring(&spring.ListenerFuncs{AtRest: func(*spring.Spring) { stats.settles++ }})
	}
	c.SetControlSpringIndex(opts.Springs / 2)

	ti := textinput.New()
	ti.Placeholder = "config name"
	ti.CharLimit = 64
	ti.Width = 40

	m := Model{
		chain:    c,
		frame:    frame,
		registry: opts.Registry,
		store:    opts.Store,
		logger:   opts.Logger,
		stats:    stats,
		fps:      opts.FPS,
		modes:    visualizer.Modes(),
		history:  visualizer.NewHistory(historySize),
		ghost:    visualizer.NewHistory(historySize),
		preset:   "custom",
		seed:     opts.Seed,
		input:    ti,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	m.setTarget((rangeLow + rangeHigh) / 2)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.frame.Cmd(), tea.SetWindowTitle("rebound"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case driver.FrameMsg:
		cmd := m.frame.Handle(msg)
		m.recordFrame()
		return m, cmd

	case tickMsg:
		if m.wander != nil {
			m.setTarget(m.wander.next(rangeLow, rangeHigh))
		}
		if m.status != "" && time.Since(m.statusTime) > 5*time.Second {
			m.status = ""
		}
		return m, tea.Batch(tickCmd(), m.frame.Cmd())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picking {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil

	case configPickedMsg:
		m.picking = false
		m.chain.SetMainConfig(msg.config)
		m.preset = msg.name
		m.restartGhost()
		m.setStatus(fmt.Sprintf("Loaded %s", msg.name))
		m.logger.Debug("config loaded", "name", msg.name)
		return m, nil

	case pickerClosedMsg:
		m.picking = false
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err))
			return m, nil
		}
		m.lastSaved = time.Now()
		m.setStatus(fmt.Sprintf("Saved %s", msg.name))
		return m, nil
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	if m.naming {
		return m.updateNameInput(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(m.keys, msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	step := (rangeHigh - rangeLow) / 20
	switch {
	case key.Matches(msg, m.keys.Left):
		m.setTarget(m.target - step)
	case key.Matches(msg, m.keys.Right):
		m.setTarget(m.target + step)
	case key.Matches(msg, m.keys.NextControl):
		m.moveControl(1)
	case key.Matches(msg, m.keys.PrevControl):
		m.moveControl(-1)
	case key.Matches(msg, m.keys.Kick):
		control := m.chain.ControlSpring()
		control.SetVelocity(control.Velocity() + 2*(rangeHigh-rangeLow))
		m.restartGhost()
	case key.Matches(msg, m.keys.TensionUp):
		m.retune(1, 0)
	case key.Matches(msg, m.keys.TensionDown):
		m.retune(-1, 0)
	case key.Matches(msg, m.keys.FrictionUp):
		m.retune(0, 1)
	case key.Matches(msg, m.keys.FrictionDown):
		m.retune(0, -1)
	case key.Matches(msg, m.keys.Clamp):
		m.clamp = !m.clamp
		for _, s := range m.chain.AllSprings() {
			s.SetOvershootClamping(m.clamp)
		}
	case key.Matches(msg, m.keys.Preset):
		m.nextPreset()
	case key.Matches(msg, m.keys.Wander):
		if m.wander == nil {
			m.seed++
			m.wander = newWanderer(m.seed)
		} else {
			m.wander = nil
		}
	case key.Matches(msg, m.keys.Viz):
		m.mode = (m.mode + 1) % len(m.modes)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Save):
		m.naming = true
		m.input.SetValue(m.preset)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Open):
		m.picking = true
		m.picker = newPicker(m.registry, m.width, m.height)
		return m, nil
	}
	return m, m.frame.Cmd()
}

func (m Model) updateNameInput(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			m.closeNameInput()
			return m, m.saveConfig(name)
		case "esc":
			m.closeNameInput()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeNameInput() {
	m.naming = false
	m.input.Reset()
	m.input.Blur()
}

// saveConfig publishes the main config in the registry and, with a store,
// persists it in the background.
func (m *Model) saveConfig(name string) tea.Cmd {
	cfg := m.chain.MainConfig()
	m.registry.Put(name, cfg)
	m.preset = name
	if m.store == nil {
		return func() tea.Msg { return configSavedMsg{name: name} }
	}
	st := m.store
	return func() tea.Msg {
		return configSavedMsg{name: name, err: st.Save(name, cfg)}
	}
}

func (m *Model) setTarget(v float64) {
	m.target = spring.Clamp(v, rangeLow, rangeHigh)
	m.chain.ControlSpring().SetEndValue(m.target)
	m.restartGhost()
}

func (m *Model) moveControl(delta int) {
	n := m.chain.Len()
	i := ((m.chain.ControlIndex()+delta)%n + n) % n
	m.chain.SetControlSpringIndex(i)
	m.chain.ControlSpring().SetEndValue(m.target)
	m.history.Clear()
	m.ghost.Clear()
	m.restartGhost()
	m.logger.Debug("control spring changed", "index", i)
}

// retune nudges the main config in Origami units.
func (m *Model) retune(dTension, dFriction float64) {
	t, f := m.chain.MainConfig().Origami()
	cfg := spring.FromOrigamiTensionAndFriction(max(t+dTension, 0), max(f+dFriction, 0))
	m.chain.SetMainConfig(cfg)
	m.preset = "custom"
	m.restartGhost()
}

func (m *Model) nextPreset() {
	idx := 0
	for i, p := range presets {
		if p.name == m.preset {
			idx = (i + 1) % len(presets)
			break
		}
	}
	p := presets[idx]
	m.chain.SetMainConfig(spring.FromBouncinessAndSpeed(p.bounciness, p.speed))
	m.preset = p.name
	m.restartGhost()
}

// restartGhost computes the reference motion of the control spring from
// its current state.
func (m *Model) restartGhost() {
	control := m.chain.ControlSpring()
	ref := visualizer.NewReference(m.fps, m.chain.MainConfig())
	m.ghostTrace = ref.Trace(control.CurrentValue(), control.Velocity(), m.target, historySize)
	m.ghostIdx = 0
}

func (m *Model) recordFrame() {
	m.history.Push(m.chain.ControlSpring().CurrentValue())
	g := m.target
	if m.ghostIdx < len(m.ghostTrace) {
		g = m.ghostTrace[m.ghostIdx]
	}
	m.ghost.Push(g)
	m.ghostIdx++
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTime = time.Now()
}

func (m Model) frameState(width int) visualizer.Frame {
	springs := m.chain.AllSprings()
	values := make([]float64, len(springs))
	for i, s := range springs {
		values[i] = s.CurrentValue()
	}
	return visualizer.Frame{
		Values:  values,
		Control: m.chain.ControlIndex(),
		Target:  m.target,
		Trace:   m.history.Last(width * 2),
		Ghost:   m.ghost.Last(width * 2),
		Low:     rangeLow,
		High:    rangeHigh,
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picking {
		return m.picker.View()
	}

	w := m.width
	if w < 30 {
		w = 60
	}

	viz := m.modes[m.mode]
	height := m.chain.Len()
	if viz.Name() == "trace" {
		height = plotHeight
	}
	viz.Update(m.frameState(w-4), w-4, height)

	header := headerStyle.Render("rebound") + helpStyle.Render("  ·  "+viz.Name())

	main := valueStyle.Render(renderTuning("main      ", m.chain.MainConfig()))
	attachment := valueStyle.Render(renderTuning("attachment", m.chain.AttachmentConfig()))
	settings := fmt.Sprintf("preset %s   %s   %s   target %.1f",
		titleStyle.Render(m.preset), renderToggle("clamp", m.clamp), renderToggle("wander", m.wander != nil), m.target)
	status := statusStyle.Render(renderStatus(m.frame.Running(), m.frame.Frames(), m.stats.settles, m.lastSaved))

	lines := "\n"
	lines += "  " + header + "\n"
	lines += "\n"
	for _, line := range strings.Split(viz.View(), "\n") {
		lines += "  " + line + "\n"
	}
	lines += "\n"
	lines += "  " + main + "\n"
	lines += "  " + attachment + "\n"
	lines += "  " + settings + "\n"
	lines += "\n"
	lines += "  " + status + "\n"
	if m.status != "" {
		lines += "  " + helpStyle.Render(m.status) + "\n"
	}
	if m.naming {
		lines += "\n"
		lines += "  " + statusStyle.Render("Save main config as:") + "\n"
		lines += "  " + m.input.View() + "\n"
		lines += "  " + helpStyle.Render("enter confirm  esc back") + "\n"
		return lines
	}
	lines += "\n"
	lines += "  " + m.help.View(m.keys) + "\n"

	return lines
}

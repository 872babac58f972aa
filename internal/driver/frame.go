package driver

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/rebound/internal/spring"
)

// FrameMsg is delivered to a Bubbletea model on every frame of a running
// Frame looper. Pass it to Frame.Handle.
type FrameMsg struct {
	gen  int
	Time time.Time
}

// Frame is a spring.Looper driven by Bubbletea tick messages. It holds no
// goroutine: the model forwards FrameMsg values to Handle, which runs the
// system and schedules the next tick while springs are moving.
//
// All methods must be called from the model's Update.
type Frame struct {
	interval time.Duration
	sys      *spring.System

	running   bool
	scheduled bool
	gen       int
	last      time.Time
	frames    int
}

// NewFrame creates a looper ticking fps times per second.
func NewFrame(fps int) *Frame {
	if fps < 1 {
		fps = 60
	}
	return &Frame{interval: time.Second / time.Duration(fps)}
}

func (f *Frame) Start(sys *spring.System) {
	f.sys = sys
	if f.running {
		return
	}
	f.running = true
	f.scheduled = false
	f.gen++
	f.last = time.Time{}
}

func (f *Frame) Stop() { f.running = false }

func (f *Frame) Running() bool           { return f.running }
func (f *Frame) Interval() time.Duration { return f.interval }

// Frames counts the frames run since the looper was created.
func (f *Frame) Frames() int { return f.frames }

// Cmd returns the tick for the next frame when the system has asked for
// frames and none is pending. Call it after mutating springs.
func (f *Frame) Cmd() tea.Cmd {
	if !f.running || f.scheduled {
		return nil
	}
	f.scheduled = true
	gen := f.gen
	return tea.Tick(f.interval, func(t time.Time) tea.Msg {
		return FrameMsg{gen: gen, Time: t}
	})
}

// Handle runs one frame and returns the tick for the next one. Ticks from
// before a Stop are ignored.
func (f *Frame) Handle(msg FrameMsg) tea.Cmd {
	if msg.gen != f.gen || !f.running {
		return nil
	}
	f.scheduled = false

	elapsed := f.interval
	if !f.last.IsZero() {
		elapsed = msg.Time.Sub(f.last)
	}
	f.last = msg.Time
	f.frames++
	f.sys.Loop(elapsed)
	return f.Cmd()
}

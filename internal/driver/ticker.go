package driver

import (
	"context"
	"sync"
	"time"

	"github.com/olivier-w/rebound/internal/spring"
)

// Ticker is a spring.Looper that runs its system on a goroutine in real
// time. Springs belong to that goroutine: mutate them only inside Do or
// from listeners.
type Ticker struct {
	interval time.Duration
	ops      chan func()

	mu      sync.Mutex
	sys     *spring.System
	running bool
	frames  int
}

// NewTicker creates a looper that integrates every interval while springs
// are moving.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = spring.SixtyFPS
	}
	return &Ticker{
		interval: interval,
		ops:      make(chan func()),
	}
}

func (t *Ticker) Start(sys *spring.System) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sys = sys
	t.running = true
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Frames counts the frames run so far.
func (t *Ticker) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

// Do runs fn on the ticker goroutine and waits for it to return.
func (t *Ticker) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	op := func() {
		defer close(done)
		fn()
	}
	select {
	case t.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run integrates the system until ctx is done. The underlying ticker only
// fires while the system has asked for frames.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.interval)
	tk.Stop()
	defer tk.Stop()

	var tick <-chan time.Time
	var last time.Time
	for {
		switch running := t.Running(); {
		case running && tick == nil:
			tk.Reset(t.interval)
			tick = tk.C
			last = time.Now()
		case !running && tick != nil:
			tk.Stop()
			tick = nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case op := <-t.ops:
			op()
		case now := <-tick:
			elapsed := now.Sub(last)
			last = now
			t.mu.Lock()
			sys := t.sys
			t.frames++
			t.mu.Unlock()
			sys.Loop(elapsed)
		}
	}
}

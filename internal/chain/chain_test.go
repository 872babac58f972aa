package chain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/olivier-w/rebound/internal/spring"
)

func runToIdle(t *testing.T, l *spring.SteppingLooper) int {
	t.Helper()
	frames := 0
	for l.Step(spring.SixtyFPS) {
		frames++
		if frames > 5000 {
			t.Fatal("chain did not settle")
		}
	}
	return frames
}

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func TestChainDefaults(t *testing.T) {
	c := New(&spring.SteppingLooper{})
	if got := c.MainConfig(); !approx(got.Tension, 230.2) || !approx(got.Friction, 19) {
		t.Fatalf("unexpected main config %+v", got)
	}
	if got := c.AttachmentConfig(); !approx(got.Tension, 338.8) || !approx(got.Friction, 31) {
		t.Fatalf("unexpected attachment config %+v", got)
	}
	if c.ControlSpring() != nil || c.ControlIndex() != -1 {
		t.Fatal("expected no control spring")
	}
	if c.System() == nil {
		t.Fatal("expected chain system")
	}
}

func TestChainOptions(t *testing.T) {
	main := spring.NewConfig(100, 10)
	attachment := spring.NewConfig(200, 20)
	c := New(&spring.SteppingLooper{}, WithMainConfig(main), WithAttachmentConfig(attachment))
	if c.MainConfig() != main || c.AttachmentConfig() != attachment {
		t.Fatalf("expected configs from options, got %+v and %+v", c.MainConfig(), c.AttachmentConfig())
	}

	c = New(&spring.SteppingLooper{}, WithOrigamiValues(40, 7, 40, 7))
	if c.MainConfig() != spring.DefaultConfig || c.AttachmentConfig() != spring.DefaultConfig {
		t.Fatal("expected origami values converted")
	}
}

func TestControlSpringGetsMainConfig(t *testing.T) {
	c := New(&spring.SteppingLooper{})
	for range 4 {
		c.AddSpring(nil)
	}
	c.SetControlSpringIndex(2)
	for i, s := range c.AllSprings() {
		want := c.AttachmentConfig()
		if i == 2 {
			want = c.MainConfig()
		}
		if s.Config() != want {
			t.Fatalf("spring %d: expected %+v, got %+v", i, want, s.Config())
		}
	}

	c.SetControlSpringIndex(0)
	if c.AllSprings()[2].Config() != c.AttachmentConfig() || c.ControlSpring().Config() != c.MainConfig() {
		t.Fatal("expected configs reassigned when the control spring moves")
	}
}

func TestSetControlSpringIndexOutOfRange(t *testing.T) {
	c := New(&spring.SteppingLooper{})
	c.AddSpring(nil).AddSpring(nil)
	for _, i := range []int{-1, 2, 10} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrIndexOutOfRange) {
					t.Fatalf("index %d: expected ErrIndexOutOfRange panic, got %v", i, err)
				}
			}()
			c.SetControlSpringIndex(i)
		}()
	}
}

func TestChainPropagatesToNeighbours(t *testing.T) {
	looper := &spring.SteppingLooper{}
	c := New(looper)
	for range 3 {
		c.AddSpring(nil)
	}
	c.SetControlSpringIndex(1)
	c.ControlSpring().SetEndValue(10)
	runToIdle(t, looper)

	control := c.ControlSpring().CurrentValue()
	if control != 10 {
		t.Fatalf("expected control spring on 10, got %v", control)
	}
	for i, s := range c.AllSprings() {
		if s.CurrentValue() != control {
			t.Fatalf("spring %d: expected %v, got %v", i, control, s.CurrentValue())
		}
		if !s.IsAtRest() || s.EndValue() != s.CurrentValue() {
			t.Fatalf("spring %d: expected at rest on its end value, got current=%v end=%v", i, s.CurrentValue(), s.EndValue())
		}
	}
}

func TestChainNeighboursSettleOnSmallTarget(t *testing.T) {
	looper := &spring.SteppingLooper{}
	c := New(looper)
	counts := make([]map[string]int, 3)
	for i := range counts {
		m := map[string]int{}
		counts[i] = m
		c.AddSpring(&spring.ListenerFuncs{
			Activate: func(*spring.Spring) { m["activate"]++ },
			AtRest:   func(*spring.Spring) { m["rest"]++ },
		})
	}
	c.SetControlSpringIndex(1)
	c.ControlSpring().SetEndValue(1)
	runToIdle(t, looper)

	for i, s := range c.AllSprings() {
		if s.CurrentValue() != 1 {
			t.Fatalf("spring %d: expected 1, got %v", i, s.CurrentValue())
		}
		if m := counts[i]; m["activate"] == 0 || m["activate"] != m["rest"] {
			t.Fatalf("spring %d: expected paired activate and rest, got %v", i, m)
		}
	}
}

func TestChainCascadesOneLinkPerFrame(t *testing.T) {
	looper := &spring.SteppingLooper{}
	c := New(looper)
	for range 5 {
		c.AddSpring(nil)
	}
	c.SetControlSpringIndex(0)
	c.ControlSpring().SetEndValue(1)

	springs := c.AllSprings()
	for frame := 1; frame <= 3; frame++ {
		looper.Step(spring.SixtyFPS)
		for i := frame; i < len(springs); i++ {
			if springs[i].CurrentValue() != 0 {
				t.Fatalf("frame %d: spring %d moved early to %v", frame, i, springs[i].CurrentValue())
			}
		}
		if springs[frame-1].CurrentValue() == 0 {
			t.Fatalf("frame %d: expected spring %d to move", frame, frame-1)
		}
	}

	runToIdle(t, looper)
	for i, s := range springs {
		if s.CurrentValue() != 1 {
			t.Fatalf("spring %d: expected 1, got %v", i, s.CurrentValue())
		}
	}
}

func TestChainPullsBothDirections(t *testing.T) {
	looper := &spring.SteppingLooper{}
	c := New(looper)
	for range 5 {
		c.AddSpring(nil)
	}
	c.SetControlSpringIndex(2)
	c.ControlSpring().SetEndValue(-4)
	runToIdle(t, looper)

	for i, s := range c.AllSprings() {
		if s.CurrentValue() != -4 {
			t.Fatalf("spring %d: expected -4, got %v", i, s.CurrentValue())
		}
	}
}

func TestChainForwardsEvents(t *testing.T) {
	looper := &spring.SteppingLooper{}
	c := New(looper)
	counts := make([]map[string]int, 3)
	for i := range counts {
		counts[i] = map[string]int{}
		m := counts[i]
		c.AddSpring(&spring.ListenerFuncs{
			Activate:       func(*spring.Spring) { m["activate"]++ },
			Update:         func(*spring.Spring) { m["update"]++ },
			AtRest:         func(*spring.Spring) { m["rest"]++ },
			EndStateChange: func(*spring.Spring) { m["end"]++ },
		})
	}
	c.SetControlSpringIndex(0)
	c.ControlSpring().SetEndValue(1)
	runToIdle(t, looper)

	for i, m := range counts {
		if m["activate"] == 0 || m["activate"] != m["rest"] || m["update"] == 0 || m["end"] == 0 {
			t.Fatalf("spring %d: unexpected events %v", i, m)
		}
	}
}

func TestChainRegistersConfigs(t *testing.T) {
	r := spring.NewConfigRegistry(true)
	c := New(&spring.SteppingLooper{}, WithRegistry(r))
	if r.Len() != 3 {
		t.Fatalf("expected default plus two chain configs, got %v", r.Names())
	}
	var main, attachment string
	for _, name := range r.Names() {
		switch {
		case strings.HasPrefix(name, "main spring "):
			main = name
		case strings.HasPrefix(name, "attachment spring "):
			attachment = name
		}
	}
	if got, _ := r.Get(main); got != c.MainConfig() {
		t.Fatalf("expected %q to hold the main config, got %+v", main, got)
	}
	if got, _ := r.Get(attachment); got != c.AttachmentConfig() {
		t.Fatalf("expected %q to hold the attachment config, got %+v", attachment, got)
	}
}

func TestChainRetuning(t *testing.T) {
	c := New(&spring.SteppingLooper{})
	c.AddSpring(nil).AddSpring(nil).AddSpring(nil)

	loose := spring.NewConfig(50, 5)
	c.SetMainConfig(loose)
	if c.MainConfig() != loose {
		t.Fatal("expected main config stored before a control spring exists")
	}

	c.SetControlSpringIndex(1)
	stiff := spring.NewConfig(500, 30)
	c.SetAttachmentConfig(stiff)
	for i, s := range c.AllSprings() {
		want := stiff
		if i == 1 {
			want = loose
		}
		if s.Config() != want {
			t.Fatalf("spring %d: expected %+v, got %+v", i, want, s.Config())
		}
	}
}

package visualizer

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/harmonica"
	"github.com/google/go-cmp/cmp"

	"github.com/olivier-w/rebound/internal/spring"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func TestHistoryKeepsMostRecent(t *testing.T) {
	h := NewHistory(4)
	if got := h.Last(3); got != nil {
		t.Fatalf("expected empty history, got %v", got)
	}
	h.Push(1, 2, 3)
	if diff := cmp.Diff([]float64{2, 3}, h.Last(2)); diff != "" {
		t.Fatalf("last mismatch (-want +got):\n%s", diff)
	}
	h.Push(4, 5, 6)
	if h.Len() != 4 {
		t.Fatalf("expected full history, got %d", h.Len())
	}
	if diff := cmp.Diff([]float64{3, 4, 5, 6}, h.Last(10)); diff != "" {
		t.Fatalf("wrapped history mismatch (-want +got):\n%s", diff)
	}
	h.Clear()
	if h.Len() != 0 || h.Last(1) != nil {
		t.Fatal("expected cleared history")
	}
}

func TestPlotDrawsRamp(t *testing.T) {
	p := NewPlot()
	trace := make([]float64, 8)
	for i := range trace {
		trace[i] = float64(i) / 7
	}
	p.Update(Frame{Trace: trace, Low: 0, High: 1}, 6, 1)
	if got := plain(p.View()); got != "⣀⠤⠒⠉" {
		t.Fatalf("unexpected plot %q", got)
	}
}

func TestPlotAlignsNewestRight(t *testing.T) {
	p := NewPlot()
	p.Update(Frame{Trace: []float64{1}, Low: 0, High: 1}, 6, 2)
	lines := strings.Split(plain(p.View()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if got := []rune(lines[0]); got[len(got)-1] != 0x2800+0x08 || got[0] != 0x2800 {
		t.Fatalf("expected single dot in the top right, got %q", lines[0])
	}
	if strings.Trim(lines[1], "⠀") != "" {
		t.Fatalf("expected empty bottom row, got %q", lines[1])
	}
}

func TestPlotDrawsGhost(t *testing.T) {
	p := NewPlot()
	p.Update(Frame{Ghost: []float64{0, 0, 0, 0}, Low: 0, High: 1}, 4, 1)
	if got := plain(p.View()); got != "⣀⣀" {
		t.Fatalf("unexpected ghost %q", got)
	}
}

func TestBarsRenderChain(t *testing.T) {
	b := NewBars()
	b.Update(Frame{Values: []float64{0, 0.5, 1}, Control: 1, Target: 1, Low: 0, High: 1}, 16, 10)
	want := strings.Join([]string{
		"  0 ●─────────",
		"▸ 1 ─────●───│",
		"  2 ─────────●",
	}, "\n")
	if got := plain(b.View()); got != want {
		t.Fatalf("unexpected bars:\n%s\nwant:\n%s", got, want)
	}

	b.Update(Frame{Values: []float64{0, 0.5, 1}, Low: 0, High: 1}, 16, 2)
	if got := strings.Count(plain(b.View()), "\n"); got != 1 {
		t.Fatalf("expected rows limited to height, got %d lines", got+1)
	}
}

func TestModes(t *testing.T) {
	names := []string{}
	for _, m := range Modes() {
		names = append(names, m.Name())
	}
	if diff := cmp.Diff([]string{"chain", "trace"}, names); diff != "" {
		t.Fatalf("modes mismatch (-want +got):\n%s", diff)
	}
}

func TestReferenceParameters(t *testing.T) {
	r := NewReference(60, spring.NewConfig(400, 20))
	if r.AngularFrequency() != 20 || r.DampingRatio() != 0.5 {
		t.Fatalf("unexpected parameters ω=%v ζ=%v", r.AngularFrequency(), r.DampingRatio())
	}

	still := NewReference(60, spring.CoastingConfig(5))
	for _, v := range still.Trace(3, 0, 10, 5) {
		if v != 3 {
			t.Fatalf("expected zero-tension reference to hold position, got %v", v)
		}
	}
}

func TestReferenceTracksIntegrator(t *testing.T) {
	configs := []spring.Config{
		spring.DefaultConfig,
		spring.FromOrigamiTensionAndFriction(40, 6),
		spring.FromOrigamiTensionAndFriction(70, 10),
		spring.FromBouncinessAndSpeed(10, 20),
	}
	const frames = 120
	for _, c := range configs {
		sys := spring.NewSystem(&spring.SteppingLooper{})
		s := sys.CreateSpring().SetConfig(c).SetEndValue(1)
		ref := NewReference(60, c).Trace(0, 0, 1, frames)

		worst := 0.0
		for i := range frames {
			if !s.IsAtRest() {
				s.Advance(harmonica.FPS(60))
			}
			worst = math.Max(worst, math.Abs(s.CurrentValue()-ref[i]))
		}
		if worst > 0.04 {
			t.Fatalf("config %+v: integrator strays %v from the closed form", c, worst)
		}
	}
}

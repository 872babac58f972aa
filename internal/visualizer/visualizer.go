package visualizer

// Frame is the chain state a visualizer draws.
type Frame struct {
	// Values holds the current value of each spring in chain order.
	Values  []float64
	Control int
	Target  float64
	// Trace is the recent history of the control spring, oldest first.
	Trace []float64
	// Ghost is the closed-form reference for Trace, sample for sample.
	Ghost []float64
	// Low and High bound the value range mapped onto the drawing area.
	Low, High float64
}

// Visualizer renders spring motion as terminal art.
type Visualizer interface {
	Name() string
	Update(f Frame, width, height int)
	View() string
}

// Modes returns all available visualizers.
func Modes() []Visualizer {
	return []Visualizer{
		NewBars(),
		NewPlot(),
	}
}

package visualizer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/rebound/internal/spring"
)

var (
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true)
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// Bars renders each spring of the chain as a horizontal track with a
// marker at its current value. The control spring's row also shows the
// target.
type Bars struct {
	output string
}

func NewBars() *Bars {
	return &Bars{}
}

func (b *Bars) Name() string { return "chain" }

// column maps v onto [0, width).
func column(v, low, high float64, width int) int {
	if high <= low || width < 1 {
		return 0
	}
	c := spring.MapValueFromRangeToRange(v, low, high, 0, float64(width-1))
	return int(spring.Clamp(c+0.5, 0, float64(width-1)))
}

func (b *Bars) Update(f Frame, width, height int) {
	trackWidth := max(width-6, 10) // "▸ 12 " prefix + margin

	rows := len(f.Values)
	if height > 0 && rows > height {
		rows = height
	}

	lines := make([]string, 0, rows)
	for i := range rows {
		lines = append(lines, b.renderRow(f, i, trackWidth))
	}
	b.output = strings.Join(lines, "\n")
}

func (b *Bars) renderRow(f Frame, i, width int) string {
	isControl := i == f.Control
	marker := column(f.Values[i], f.Low, f.High, width)
	target := -1
	if isControl {
		target = column(f.Target, f.Low, f.High, width)
	}

	var sb strings.Builder
	if isControl {
		sb.WriteString(controlStyle.Render(fmt.Sprintf("▸%2d ", i)))
	} else {
		sb.WriteString(fmt.Sprintf(" %2d ", i))
	}
	for c := range width {
		switch {
		case c == marker && isControl:
			sb.WriteString(controlStyle.Render("●"))
		case c == marker:
			sb.WriteString(markerStyle.Render("●"))
		case c == target:
			sb.WriteString(targetStyle.Render("│"))
		default:
			sb.WriteString(trackStyle.Render("─"))
		}
	}
	return sb.String()
}

func (b *Bars) View() string {
	return b.output
}

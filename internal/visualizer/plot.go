package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/rebound/internal/spring"
)

var (
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3CE074"))
	ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5F77"))
)

// Plot renders the control spring's recent trajectory with Unicode
// Braille characters, with the closed-form reference as a dim ghost.
// Each cell is a 2x4 dot grid, giving 2x horizontal and 4x vertical
// resolution.
type Plot struct {
	output string
}

func NewPlot() *Plot {
	return &Plot{}
}

func (p *Plot) Name() string { return "trace" }

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// dotGrid holds one dot row per trace column, -1 for no dot.
func dotGrid(values []float64, dotCols, dotRows int, low, high float64) []int {
	rows := make([]int, dotCols)
	for i := range rows {
		rows[i] = -1
	}
	if len(values) == 0 || high <= low {
		return rows
	}
	// The newest sample sits in the rightmost column.
	offset := dotCols - len(values)
	for i, v := range values {
		dc := offset + i
		if dc < 0 {
			continue
		}
		r := spring.MapValueFromRangeToRange(v, low, high, float64(dotRows-1), 0)
		rows[dc] = int(spring.Clamp(r+0.5, 0, float64(dotRows-1)))
	}
	return rows
}

func cellPattern(grid []int, row, col int) uint {
	var pattern uint
	for dx := range 2 {
		dc := col*2 + dx
		if dc >= len(grid) || grid[dc] < 0 {
			continue
		}
		if dy := grid[dc] - row*4; dy >= 0 && dy < 4 {
			pattern |= 1 << brailleBits[dx][dy]
		}
	}
	return pattern
}

func (p *Plot) Update(f Frame, width, height int) {
	if height < 1 {
		height = 1
	}
	cols := max(width-2, 2)

	dotCols := cols * 2
	dotRows := height * 4
	trace := dotGrid(f.Trace, dotCols, dotRows, f.Low, f.High)
	ghost := dotGrid(f.Ghost, dotCols, dotRows, f.Low, f.High)

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		for col := range cols {
			t := cellPattern(trace, row, col)
			g := cellPattern(ghost, row, col)
			switch {
			case t != 0:
				line.WriteString(traceStyle.Render(string(rune(0x2800 + (t | g)))))
			case g != 0:
				line.WriteString(ghostStyle.Render(string(rune(0x2800 + g))))
			default:
				line.WriteRune(0x2800)
			}
		}
		rows[row] = line.String()
	}

	p.output = strings.Join(rows, "\n")
}

func (p *Plot) View() string {
	return p.output
}

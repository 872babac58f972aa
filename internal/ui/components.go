package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/olivier-w/rebound/internal/spring"
)

// renderTuning describes a config in raw and Origami units.
func renderTuning(label string, c spring.Config) string {
	ot, of := c.Origami()
	return fmt.Sprintf("%s  tension %.1f  friction %.1f  (origami %.0f/%.0f)", label, c.Tension, c.Friction, ot, of)
}

func renderToggle(label string, on bool) string {
	if on {
		return onStyle.Render(label + " on")
	}
	return label + " off"
}

// renderStatus summarizes the motion state of the chain.
func renderStatus(moving bool, frames, settled int, lastSaved time.Time) string {
	parts := []string{"● at rest"}
	if moving {
		parts[0] = "◉ moving"
	}
	parts = append(parts, humanize.Comma(int64(frames))+" frames")
	parts = append(parts, fmt.Sprintf("%s %s", humanize.Comma(int64(settled)), plural(settled, "settle", "settles")))
	if !lastSaved.IsZero() {
		parts = append(parts, "saved "+humanize.Time(lastSaved))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

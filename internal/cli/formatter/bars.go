package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/burnrate/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderSlider renders a slider track like [████░░░░░░░░] for a value
// within [min, max]. The track is neutral foreground; coloring is left to
// the caller's row styling so focused and blurred sliders read the same.
func RenderSlider(value, min, max float64, width int) string {
	if width < 2 {
		width = 2
	}
	span := max - min
	var pct float64
	if span > 0 {
		pct = (value - min) / span
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return "[" + StyleBlue.Render(bar) + "]"
}

// RenderGauge renders the 0-10 score as a colored bar like
// [███████░░░] 7.2, tinted by the score's risk tier.
func RenderGauge(score float64, level domain.RiskLevel, width int) string {
	if width < 2 {
		width = 2
	}
	pct := score / 10
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %s", RiskColor(level).Render(bar), FormatScore(score))
}

// FormatScore renders a score with one decimal place, e.g. "9.2".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// FormatHours renders an hour count, dropping a trailing ".0".
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

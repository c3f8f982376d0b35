package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderSlider_FillProportions(t *testing.T) {
	empty := RenderSlider(0, 0, 10, 10)
	assert.Equal(t, 0, strings.Count(empty, filledBlock))
	assert.Equal(t, 10, strings.Count(empty, emptyBlock))

	full := RenderSlider(10, 0, 10, 10)
	assert.Equal(t, 10, strings.Count(full, filledBlock))

	half := RenderSlider(5, 0, 10, 10)
	assert.Equal(t, 5, strings.Count(half, filledBlock))
}

func TestRenderSlider_ClampsOutOfRange(t *testing.T) {
	over := RenderSlider(99, 0, 10, 8)
	assert.Equal(t, 8, strings.Count(over, filledBlock))

	under := RenderSlider(-3, 0, 10, 8)
	assert.Equal(t, 0, strings.Count(under, filledBlock))
}

func TestRenderSlider_ZeroSpanDoesNotPanic(t *testing.T) {
	bar := RenderSlider(5, 5, 5, 8)
	assert.Equal(t, 0, strings.Count(bar, filledBlock))
}

func TestRenderGauge_ShowsOneDecimalScore(t *testing.T) {
	out := RenderGauge(9.15, domain.RiskHigh, 10)
	assert.Contains(t, out, "9.2")
	assert.Equal(t, 9, strings.Count(out, filledBlock))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.0", FormatScore(0))
	assert.Equal(t, "9.2", FormatScore(9.15))
	assert.Equal(t, "10.0", FormatScore(10))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "40h", FormatHours(40))
	assert.Equal(t, "7.5h", FormatHours(7.5))
	assert.Equal(t, "0h", FormatHours(0))
}

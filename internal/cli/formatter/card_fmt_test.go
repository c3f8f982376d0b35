package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCard_HighRisk(t *testing.T) {
	a := assess.Evaluate(domain.Inputs{HoursWorked: 60, SleepHours: 6, SelfCareHours: 2},
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	out := FormatCard(a)

	assert.Contains(t, out, "BURNOUT RISK")
	assert.Contains(t, out, "9.2")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "2-4 weeks if patterns continue")
	assert.Contains(t, out, "60h worked, 6h sleep, 2h self-care")
	assert.Contains(t, out, "+1.50")
	assert.Contains(t, out, "+0.25")
	assert.Contains(t, out, "+0.80")
}

func TestFormatCard_LowRisk(t *testing.T) {
	a := assess.Evaluate(domain.Inputs{HoursWorked: 20, SleepHours: 9, SelfCareHours: 15},
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	out := FormatCard(a)

	assert.Contains(t, out, "0.1")
	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "Low risk - maintain current balance")
	assert.Contains(t, out, "-0.12") // sleep surplus, exactly -0.125
	assert.Contains(t, out, "-0.50") // self-care surplus
}

func TestFormatFactor_Signs(t *testing.T) {
	assert.Contains(t, FormatFactor(0.25), "+0.25")
	assert.Contains(t, FormatFactor(-0.5), "-0.50")
	assert.Contains(t, FormatFactor(0), "+0.00")
}

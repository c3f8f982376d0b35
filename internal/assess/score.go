package assess

import (
	"math"
	"time"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/google/uuid"
)

// Factor weights. Workload carries 40% of the composite, the two deficit
// terms 30% each; the divisor folds the weighted sum back to a [0,1]
// fraction before rescaling to the 0-10 display score.
const (
	weightWork     = 4.0
	weightSleep    = 3.0
	weightSelfCare = 3.0
	weightTotal    = 10.0
)

// Reference points: a 40-hour week is baseline load, 8 hours of sleep and
// 10 hours of weekly self-care are zero-deficit.
const (
	baselineWorkWeek = 40.0
	restfulSleep     = 8.0
	fullSelfCare     = 10.0
)

// Breakdown holds the normalized per-factor terms behind a score.
// Deficits are negative when the input is above its reference point.
type Breakdown struct {
	WorkLoad        float64
	SleepDeficit    float64
	SelfCareDeficit float64
}

// Factors returns the normalized factor terms for the given inputs.
func Factors(in domain.Inputs) Breakdown {
	return Breakdown{
		WorkLoad:        in.HoursWorked / baselineWorkWeek,
		SleepDeficit:    (restfulSleep - in.SleepHours) / restfulSleep,
		SelfCareDeficit: (fullSelfCare - in.SelfCareHours) / fullSelfCare,
	}
}

// Score maps the lifestyle inputs to a burnout risk score in [0, 10].
// Out-of-range values are computed, not rejected; the raw fraction
// saturates at 0 and 1 before rescaling, so extreme inputs can never push
// the score outside the display range.
func Score(in domain.Inputs) float64 {
	f := Factors(in)
	raw := (f.WorkLoad*weightWork + f.SleepDeficit*weightSleep + f.SelfCareDeficit*weightSelfCare) / weightTotal
	raw = math.Min(1, math.Max(0, raw))
	return raw * 10
}

// LevelFor maps a score to its risk tier.
func LevelFor(score float64) domain.RiskLevel {
	switch {
	case score <= 3:
		return domain.RiskLow
	case score <= 6:
		return domain.RiskModerate
	default:
		return domain.RiskHigh
	}
}

// WindowFor maps a score to the projected burnout window.
func WindowFor(score float64) string {
	switch {
	case score <= 3:
		return "Low risk - maintain current balance"
	case score <= 6:
		return "4-8 weeks if patterns continue"
	default:
		return "2-4 weeks if patterns continue"
	}
}

// Evaluate scores the inputs and returns a frozen assessment.
func Evaluate(in domain.Inputs, now time.Time) domain.Assessment {
	score := Score(in)
	return domain.Assessment{
		ID:      uuid.NewString(),
		TakenAt: now,
		Inputs:  in,
		Score:   score,
		Level:   LevelFor(score),
		Window:  WindowFor(score),
	}
}

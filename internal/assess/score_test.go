package assess

import (
	"testing"
	"time"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputs(work, sleep, care float64) domain.Inputs {
	return domain.Inputs{HoursWorked: work, SleepHours: sleep, SelfCareHours: care}
}

func TestScore_BaselineIsZero(t *testing.T) {
	// 40h work, 8h sleep, 10h self-care: baseline load, zero deficits.
	assert.Equal(t, 0.0, Score(inputs(40, 8, 10)))
}

func TestScore_MaxedInputsSaturateAtTen(t *testing.T) {
	assert.Equal(t, 10.0, Score(inputs(100, 0, 0)))
}

func TestScore_NegativeRawClampsToZero(t *testing.T) {
	// Low workload with surplus sleep and self-care drives the raw
	// composite negative; the score saturates at 0 rather than going under.
	assert.Equal(t, 0.0, Score(inputs(0, 12, 40)))
}

func TestScore_OverworkedExample(t *testing.T) {
	// workLoad=1.5, sleepDeficit=0.25, selfCareDeficit=0.8
	// raw = (6 + 0.75 + 2.4) / 10 = 0.915 => 9.15
	score := Score(inputs(60, 6, 2))
	assert.InDelta(t, 9.15, score, 1e-9)
	assert.Equal(t, domain.RiskHigh, LevelFor(score))
	assert.Equal(t, "2-4 weeks if patterns continue", WindowFor(score))
}

func TestScore_RestedExample(t *testing.T) {
	// workLoad=0.5, sleepDeficit=-0.125, selfCareDeficit=-0.5
	// raw = (2 - 0.375 - 1.5) / 10 = 0.0125 => 0.125
	score := Score(inputs(20, 9, 15))
	assert.InDelta(t, 0.125, score, 1e-9)
	assert.Equal(t, domain.RiskLow, LevelFor(score))
	assert.Equal(t, "Low risk - maintain current balance", WindowFor(score))
}

func TestScore_RangeInvariant(t *testing.T) {
	extremes := []domain.Inputs{
		inputs(0, 0, 0),
		inputs(100, 12, 40),
		inputs(1000, -5, -100),
		inputs(-50, 30, 200),
	}
	for _, in := range extremes {
		score := Score(in)
		assert.GreaterOrEqual(t, score, 0.0, "inputs %+v", in)
		assert.LessOrEqual(t, score, 10.0, "inputs %+v", in)
	}
}

func TestScore_MonotoneInWork(t *testing.T) {
	prev := Score(inputs(0, 6, 5))
	for work := 5.0; work <= 100; work += 5 {
		cur := Score(inputs(work, 6, 5))
		assert.GreaterOrEqual(t, cur, prev, "work=%v", work)
		prev = cur
	}
}

func TestScore_MoreSleepNeverRaisesScore(t *testing.T) {
	prev := Score(inputs(50, 0, 5))
	for sleep := 0.5; sleep <= 12; sleep += 0.5 {
		cur := Score(inputs(50, sleep, 5))
		assert.LessOrEqual(t, cur, prev, "sleep=%v", sleep)
		prev = cur
	}
}

func TestScore_MoreSelfCareNeverRaisesScore(t *testing.T) {
	prev := Score(inputs(50, 6, 0))
	for care := 0.5; care <= 40; care += 0.5 {
		cur := Score(inputs(50, 6, care))
		assert.LessOrEqual(t, cur, prev, "care=%v", care)
		prev = cur
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	assert.Equal(t, domain.RiskLow, LevelFor(3.0))
	assert.Equal(t, domain.RiskModerate, LevelFor(3.01))
	assert.Equal(t, domain.RiskModerate, LevelFor(6.0))
	assert.Equal(t, domain.RiskHigh, LevelFor(6.01))
}

func TestWindowFor_Boundaries(t *testing.T) {
	assert.Equal(t, "Low risk - maintain current balance", WindowFor(3.0))
	assert.Equal(t, "4-8 weeks if patterns continue", WindowFor(3.01))
	assert.Equal(t, "4-8 weeks if patterns continue", WindowFor(6.0))
	assert.Equal(t, "2-4 weeks if patterns continue", WindowFor(6.01))
}

func TestFactors(t *testing.T) {
	f := Factors(inputs(60, 6, 2))
	assert.InDelta(t, 1.5, f.WorkLoad, 1e-9)
	assert.InDelta(t, 0.25, f.SleepDeficit, 1e-9)
	assert.InDelta(t, 0.8, f.SelfCareDeficit, 1e-9)
}

func TestEvaluate_PopulatesAssessment(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	a := Evaluate(inputs(60, 6, 2), now)

	require.NotEmpty(t, a.ID)
	assert.Equal(t, now, a.TakenAt)
	assert.InDelta(t, 9.15, a.Score, 1e-9)
	assert.Equal(t, domain.RiskHigh, a.Level)
	assert.Equal(t, "2-4 weeks if patterns continue", a.Window)
	assert.Equal(t, inputs(60, 6, 2), a.Inputs)
}

func TestEvaluate_UniqueIDs(t *testing.T) {
	now := time.Now()
	a := Evaluate(domain.DefaultInputs(), now)
	b := Evaluate(domain.DefaultInputs(), now)
	assert.NotEqual(t, a.ID, b.ID)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_StartsEditingWithDefaults(t *testing.T) {
	s := NewSession()
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, Inputs{HoursWorked: 40, SleepHours: 7, SelfCareHours: 5}, s.Inputs)
	assert.Nil(t, s.Current())
	assert.Empty(t, s.History())
}

func TestSession_FreezeMovesToResults(t *testing.T) {
	s := NewSession()
	a := Assessment{ID: "a1", TakenAt: time.Now(), Inputs: s.Inputs, Score: 5.25, Level: RiskModerate}

	require.NoError(t, s.Freeze(a))
	assert.Equal(t, ModeResults, s.Mode())
	require.NotNil(t, s.Current())
	assert.Equal(t, 5.25, s.Current().Score)
	assert.Len(t, s.History(), 1)
}

func TestSession_FreezeTwiceFails(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Freeze(Assessment{ID: "a1"}))
	assert.Error(t, s.Freeze(Assessment{ID: "a2"}))
}

func TestSession_ResetRestoresDefaults(t *testing.T) {
	s := NewSession()
	s.Inputs = Inputs{HoursWorked: 90, SleepHours: 4, SelfCareHours: 0}
	require.NoError(t, s.Freeze(Assessment{ID: "a1", Inputs: s.Inputs}))

	s.Reset()

	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, DefaultInputs(), s.Inputs)
	assert.Nil(t, s.Current())
	// History survives reset; it is session-scoped, not result-scoped.
	assert.Len(t, s.History(), 1)
}

func TestSession_ResetWhileEditingIsValid(t *testing.T) {
	s := NewSession()
	s.Inputs.HoursWorked = 80
	s.Reset()
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, DefaultInputs(), s.Inputs)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 12))
	assert.Equal(t, 12.0, Clamp(13, 0, 12))
	assert.Equal(t, 7.5, Clamp(7.5, 0, 12))
}

func TestRiskLevelLabel(t *testing.T) {
	assert.Equal(t, "Low", RiskLow.Label())
	assert.Equal(t, "Moderate", RiskModerate.Label())
	assert.Equal(t, "High", RiskHigh.Label())
	assert.Equal(t, "Unknown", RiskLevel("bogus").Label())
}

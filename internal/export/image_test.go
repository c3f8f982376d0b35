package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment() domain.Assessment {
	return domain.Assessment{
		ID:      "a1",
		TakenAt: time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
		Inputs:  domain.Inputs{HoursWorked: 60, SleepHours: 6, SelfCareHours: 2},
		Score:   9.15,
		Level:   domain.RiskHigh,
		Window:  "2-4 weeks if patterns continue",
	}
}

func TestRender_CardDimensions(t *testing.T) {
	img, err := Render(sampleAssessment())
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, cardWidth, bounds.Dx())
	assert.Equal(t, cardHeight, bounds.Dy())
}

func TestRender_ZeroScoreDoesNotPanic(t *testing.T) {
	a := sampleAssessment()
	a.Score = 0
	a.Level = domain.RiskLow
	_, err := Render(a)
	assert.NoError(t, err)
}

func TestWrite_ProducesDecodablePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Write(sampleAssessment(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
}

func TestWrite_BadPathFails(t *testing.T) {
	err := Write(sampleAssessment(), filepath.Join(t.TempDir(), "missing", "dir", Filename))
	assert.Error(t, err)
}

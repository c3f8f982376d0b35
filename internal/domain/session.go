package domain

import (
	"fmt"
	"time"
)

// Assessment is a frozen scoring result. It is created when the user
// transitions from editing to results and never mutated afterwards.
type Assessment struct {
	ID      string
	TakenAt time.Time
	Inputs  Inputs
	Score   float64
	Level   RiskLevel
	Window  string
}

// Session owns the in-memory lifecycle of the inputs: a two-state machine
// with states {editing, results}. Editing→results on Freeze, results→editing
// on Reset. There are no other transitions and no persistence — the session
// lives exactly as long as the process.
type Session struct {
	Inputs Inputs

	mode    Mode
	current *Assessment
	history []Assessment
}

// NewSession starts a session in editing mode with default inputs.
func NewSession() *Session {
	return &Session{
		Inputs: DefaultInputs(),
		mode:   ModeEditing,
	}
}

func (s *Session) Mode() Mode { return s.mode }

// Current returns the frozen assessment, or nil while editing.
func (s *Session) Current() *Assessment { return s.current }

// History returns the assessments taken this session, oldest first.
func (s *Session) History() []Assessment { return s.history }

// Freeze pins the given assessment and moves the session to results mode.
// Only valid while editing.
func (s *Session) Freeze(a Assessment) error {
	if s.mode != ModeEditing {
		return fmt.Errorf("freeze: session is in %s mode", s.mode)
	}
	s.mode = ModeResults
	s.current = &a
	s.history = append(s.history, a)
	return nil
}

// Reset restores the default input tuple, clears any frozen assessment and
// returns to editing mode. Valid in either mode; the session history is kept.
func (s *Session) Reset() {
	s.Inputs = DefaultInputs()
	s.mode = ModeEditing
	s.current = nil
}

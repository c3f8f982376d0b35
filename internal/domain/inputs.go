package domain

// Slider domains for the three lifestyle inputs. The scorer accepts any
// value; these bounds constrain the interactive controls only.
const (
	HoursWorkedMin  = 0.0
	HoursWorkedMax  = 100.0
	HoursWorkedStep = 1.0

	SleepHoursMin  = 0.0
	SleepHoursMax  = 12.0
	SleepHoursStep = 0.5

	SelfCareMin  = 0.0
	SelfCareMax  = 40.0
	SelfCareStep = 0.5
)

const (
	DefaultHoursWorked = 40.0
	DefaultSleepHours  = 7.0
	DefaultSelfCare    = 5.0
)

// Inputs is the lifestyle tuple the risk score is derived from.
type Inputs struct {
	HoursWorked   float64 // hours worked per week
	SleepHours    float64 // hours slept per night
	SelfCareHours float64 // self-care hours per week
}

// DefaultInputs returns the starting tuple shown when editing begins.
func DefaultInputs() Inputs {
	return Inputs{
		HoursWorked:   DefaultHoursWorked,
		SleepHours:    DefaultSleepHours,
		SelfCareHours: DefaultSelfCare,
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

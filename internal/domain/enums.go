package domain

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Label returns the display form of the level, e.g. "Moderate".
func (l RiskLevel) Label() string {
	switch l {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

type Mode string

const (
	ModeEditing Mode = "editing"
	ModeResults Mode = "results"
)

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/domain"
)

// FormatCard renders an assessment as a plain-text results card for
// non-interactive output.
func FormatCard(a domain.Assessment) string {
	var b strings.Builder

	b.WriteString(Header("Burnout Risk") + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		Dim("Score    "),
		RenderGauge(a.Score, a.Level, 20)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		Dim("Tier     "),
		RiskIndicator(a.Level)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		Dim("Outlook  "),
		StyleFg.Render(a.Window)))

	f := assess.Factors(a.Inputs)
	b.WriteString(fmt.Sprintf("  %s %s worked, %s sleep, %s self-care\n",
		Dim("Inputs   "),
		Bold(FormatHours(a.Inputs.HoursWorked)),
		Bold(FormatHours(a.Inputs.SleepHours)),
		Bold(FormatHours(a.Inputs.SelfCareHours))))
	b.WriteString(fmt.Sprintf("  %s workload %s  sleep deficit %s  self-care deficit %s\n",
		Dim("Factors  "),
		FormatFactor(f.WorkLoad),
		FormatFactor(f.SleepDeficit),
		FormatFactor(f.SelfCareDeficit)))

	return b.String()
}

// FormatFactor renders a normalized factor term with its sign, e.g. "+0.25".
// Negative terms (surplus sleep or self-care) render dim since they pull
// the score down.
func FormatFactor(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	if v < 0 {
		return Dim(s)
	}
	return StyleFg.Render(s)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyView lists the assessments taken this session, newest first.
// History is in-memory only and dies with the process.
type historyView struct {
	state *SharedState
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *historyView) View() string {
	history := v.state.Session.History()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Session history") + "\n\n")

	if len(history) == 0 {
		b.WriteString("  " + formatter.Dim("No assessments yet this session."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s %-22s %-6s %s\n",
		formatter.Dim("time     "),
		formatter.Dim("inputs (work/sleep/care)"),
		formatter.Dim("score"),
		formatter.Dim("tier")))

	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		inputs := fmt.Sprintf("%s / %s / %s",
			formatter.FormatHours(a.Inputs.HoursWorked),
			formatter.FormatHours(a.Inputs.SleepHours),
			formatter.FormatHours(a.Inputs.SelfCareHours))
		b.WriteString(fmt.Sprintf("  %s %-22s %-6s %s\n",
			formatter.Dim(a.TakenAt.Format("15:04:05")),
			formatter.StyleFg.Render(padRight(inputs, 22)),
			formatter.Bold(formatter.FormatScore(a.Score)),
			formatter.RiskIndicator(a.Level)))
	}

	return b.String()
}

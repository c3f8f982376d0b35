package cli

import (
	"strings"

	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/export"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultsView shows the frozen assessment: score, tier, projection and the
// factor breakdown. Inputs are read-only here; leaving this view resets the
// session back to editing.
type resultsView struct {
	state *SharedState
}

func newResultsView(state *SharedState) *resultsView {
	return &resultsView{state: state}
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "Results" }

func (v *resultsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "save image")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
	}
}

func (v *resultsView) Init() tea.Cmd { return nil }

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "s":
		return v, pushView(newShareMenuView(v.state))
	case "x":
		return v, exportCardCmd(v.state)
	case "h":
		return v, pushView(newHistoryView(v.state))
	case "r":
		return v, popView()
	}

	return v, nil
}

// exportCardCmd renders the PNG card asynchronously. Failure is reported as
// a notice and never blocks the other share paths.
func exportCardCmd(state *SharedState) tea.Cmd {
	cur := state.Session.Current()
	if cur == nil {
		return nil
	}
	app := state.App
	a := *cur
	return func() tea.Msg {
		if err := app.writeCard(a, export.Filename); err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("✖ Error generating image: " + err.Error())}
		}
		return noticeMsg{text: formatter.StyleGreen.Render("✔ Saved " + export.Filename)}
	}
}

func (v *resultsView) View() string {
	a := v.state.Session.Current()
	if a == nil {
		return "\n  " + formatter.Dim("Nothing scored yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(formatter.FormatCard(*a), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n    " + formatter.Dim("Taken "+a.TakenAt.Format("15:04:05")))

	return b.String()
}

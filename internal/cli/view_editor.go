package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sliderField describes one bounded input row in the editor.
type sliderField struct {
	label string
	unit  string
	min   float64
	max   float64
	step  float64
	get   func(*domain.Inputs) float64
	set   func(*domain.Inputs, float64)
}

// editorFields defines the three lifestyle sliders. Adjustment clamps at the
// range edges; the scorer itself accepts any value.
var editorFields = []sliderField{
	{
		label: "Hours worked", unit: "/week",
		min: domain.HoursWorkedMin, max: domain.HoursWorkedMax, step: domain.HoursWorkedStep,
		get: func(in *domain.Inputs) float64 { return in.HoursWorked },
		set: func(in *domain.Inputs, v float64) { in.HoursWorked = v },
	},
	{
		label: "Sleep", unit: "/night",
		min: domain.SleepHoursMin, max: domain.SleepHoursMax, step: domain.SleepHoursStep,
		get: func(in *domain.Inputs) float64 { return in.SleepHours },
		set: func(in *domain.Inputs, v float64) { in.SleepHours = v },
	},
	{
		label: "Self-care", unit: "/week",
		min: domain.SelfCareMin, max: domain.SelfCareMax, step: domain.SelfCareStep,
		get: func(in *domain.Inputs) float64 { return in.SelfCareHours },
		set: func(in *domain.Inputs, v float64) { in.SelfCareHours = v },
	},
}

// editorView is the home screen: three sliders bound to the session inputs.
type editorView struct {
	state  *SharedState
	cursor int
}

func newEditorView(state *SharedState) *editorView {
	return &editorView{state: state}
}

func (v *editorView) ID() ViewID    { return ViewEditor }
func (v *editorView) Title() string { return "" }

func (v *editorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "field")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "see results")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *editorView) Init() tea.Cmd { return nil }

func (v *editorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(editorFields)-1 {
			v.cursor++
		}
	case "left", "h":
		v.adjust(-1)
	case "right", "l":
		v.adjust(+1)
	case "r":
		v.state.Session.Reset()
	case "enter":
		a := assess.Evaluate(v.state.Session.Inputs, v.state.App.now())
		if err := v.state.Session.Freeze(a); err != nil {
			return v, notice(formatter.StyleRed.Render("✖ " + err.Error()))
		}
		return v, pushView(newResultsView(v.state))
	}

	return v, nil
}

// adjust moves the selected slider by dir steps, clamped to its range.
func (v *editorView) adjust(dir float64) {
	f := editorFields[v.cursor]
	in := &v.state.Session.Inputs
	f.set(in, domain.Clamp(f.get(in)+dir*f.step, f.min, f.max))
}

func (v *editorView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("How's your week?") + "\n\n")

	in := &v.state.Session.Inputs
	for i, f := range editorFields {
		cursor := "  "
		labelStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			labelStyle = formatter.StyleBold
		}

		value := formatter.FormatHours(f.get(in)) + " " + f.unit
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n\n",
			cursor,
			labelStyle.Render(padRight(f.label, 14)),
			formatter.RenderSlider(f.get(in), f.min, f.max, 24),
			formatter.Bold(value),
		))
	}

	b.WriteString("  " + formatter.Dim("Adjust the sliders, then press enter to check your burnout risk."))

	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package cli

import (
	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/share"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// burnrateHuhTheme returns a custom huh theme using the Gruvbox palette.
func burnrateHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// shareMenuView wraps a huh select over the share targets. On completion it
// performs the chosen action; Esc cancels. Either way the appModel pops the
// menu via shareMenuDoneMsg and returns to the results view.
type shareMenuView struct {
	state  *SharedState
	form   *huh.Form
	choice *string
}

func newShareMenuView(state *SharedState) *shareMenuView {
	choice := new(string)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Share your result").
				Options(
					huh.NewOption("Share on Twitter/X", "twitter"),
					huh.NewOption("Share on LinkedIn", "linkedin"),
					huh.NewOption("Email results", "email"),
					huh.NewOption("Save image", "image"),
				).
				Value(choice),
		),
	).WithTheme(burnrateHuhTheme()).WithShowHelp(false)

	return &shareMenuView{state: state, form: form, choice: choice}
}

func (v *shareMenuView) ID() ViewID    { return ViewShare }
func (v *shareMenuView) Title() string { return "Share" }

func (v *shareMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *shareMenuView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *shareMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the menu.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return shareMenuDoneMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		action := performShareCmd(v.state, *v.choice)
		return v, func() tea.Msg {
			return shareMenuDoneMsg{nextCmd: tea.Batch(cmd, action)}
		}
	}

	return v, cmd
}

func (v *shareMenuView) View() string {
	return v.form.View()
}

// performShareCmd executes the chosen share action and reports the outcome
// as a notice. A failed action leaves every other target available.
func performShareCmd(state *SharedState, choice string) tea.Cmd {
	cur := state.Session.Current()
	if cur == nil {
		return nil
	}
	app := state.App
	a := *cur

	if choice == "image" {
		return exportCardCmd(state)
	}

	return func() tea.Msg {
		var label, url string
		switch choice {
		case "twitter":
			label, url = "Twitter/X", share.TweetURL(a)
		case "linkedin":
			label, url = "LinkedIn", share.LinkedInURL(a)
		case "email":
			label, url = "email compose", share.MailtoURL(a)
		default:
			return nil
		}

		if err := app.opener().Open(url); err != nil {
			return noticeMsg{text: formatter.StyleRed.Render("✖ Could not open " + label + ": " + err.Error())}
		}
		return noticeMsg{text: formatter.StyleGreen.Render("✔ Opened " + label)}
	}
}

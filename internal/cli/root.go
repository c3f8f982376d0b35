package cli

import (
	"time"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/alexanderramin/burnrate/internal/export"
	"github.com/alexanderramin/burnrate/internal/share"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the injectable collaborators used by CLI commands and the TUI.
// Zero fields fall back to the real implementations.
type App struct {
	// Opener launches share-intent URLs.
	Opener share.Opener

	// WriteCard renders the PNG results card to a path.
	WriteCard func(domain.Assessment, string) error

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Now is the clock used when freezing assessments.
	Now func() time.Time
}

func (a *App) opener() share.Opener {
	if a.Opener != nil {
		return a.Opener
	}
	return share.BrowserOpener{}
}

func (a *App) writeCard(as domain.Assessment, path string) error {
	if a.WriteCard != nil {
		return a.WriteCard(as, path)
	}
	return export.Write(as, path)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "burnrate" command and registers all
// subcommands against the provided App. With no subcommand it launches the
// interactive TUI when attached to a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "burnrate",
		Short: "Interactive burnout risk checker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newScoreCmd(app),
		newShareCmd(app),
		newExportCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

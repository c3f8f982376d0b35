package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/burnrate/internal/cli"
	"github.com/alexanderramin/burnrate/internal/export"
	"github.com/alexanderramin/burnrate/internal/share"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Opener:    share.BrowserOpener{},
		WriteCard: export.Write,
		Now:       time.Now,
	}

	// Launch the TUI only when attached to a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

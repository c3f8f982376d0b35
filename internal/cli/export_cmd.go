package cli

import (
	"fmt"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var in inputFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the results card to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := assess.Evaluate(in.inputs(), app.now())

			if err := app.writeCard(a, out); err != nil {
				return fmt.Errorf("generating image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n",
				formatter.StyleGreen.Render("✔"), formatter.Bold(out))
			return nil
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().StringVar(&out, "out", export.Filename, "Output path for the PNG card")

	return cmd
}

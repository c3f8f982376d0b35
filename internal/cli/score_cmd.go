package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// inputFlags binds the three lifestyle inputs as flags, shared by the
// score/share/export commands.
type inputFlags struct {
	work  float64
	sleep float64
	care  float64
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.work, "work", domain.DefaultHoursWorked, "Hours worked per week")
	fs.Float64Var(&f.sleep, "sleep", domain.DefaultSleepHours, "Hours of sleep per night")
	fs.Float64Var(&f.care, "care", domain.DefaultSelfCare, "Self-care hours per week")
}

func (f *inputFlags) inputs() domain.Inputs {
	return domain.Inputs{HoursWorked: f.work, SleepHours: f.sleep, SelfCareHours: f.care}
}

// scoreJSON is the machine-readable shape for --json output.
type scoreJSON struct {
	HoursWorked   float64 `json:"hours_worked"`
	SleepHours    float64 `json:"sleep_hours"`
	SelfCareHours float64 `json:"self_care_hours"`
	Score         float64 `json:"score"`
	Level         string  `json:"level"`
	Window        string  `json:"window"`
}

func newScoreCmd(app *App) *cobra.Command {
	var in inputFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a burnout risk score from the given inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := assess.Evaluate(in.inputs(), app.now())

			if asJSON {
				out, err := json.MarshalIndent(scoreJSON{
					HoursWorked:   a.Inputs.HoursWorked,
					SleepHours:    a.Inputs.SleepHours,
					SelfCareHours: a.Inputs.SelfCareHours,
					Score:         a.Score,
					Level:         string(a.Level),
					Window:        a.Window,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCard(a))
			return nil
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

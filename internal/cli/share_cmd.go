package cli

import (
	"fmt"

	"github.com/alexanderramin/burnrate/internal/assess"
	"github.com/alexanderramin/burnrate/internal/cli/formatter"
	"github.com/alexanderramin/burnrate/internal/share"
	"github.com/spf13/cobra"
)

func newShareCmd(app *App) *cobra.Command {
	var in inputFlags
	var open bool
	var platform string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print or open share links for a scored result",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := assess.Evaluate(in.inputs(), app.now())

			type target struct {
				key, label, url string
			}
			targets := []target{
				{"twitter", "Twitter/X", share.TweetURL(a)},
				{"linkedin", "LinkedIn", share.LinkedInURL(a)},
				{"email", "Email", share.MailtoURL(a)},
			}

			matched := false
			for _, tg := range targets {
				if platform != "all" && platform != tg.key {
					continue
				}
				matched = true
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", formatter.Bold(tg.label), tg.url)
				if open {
					if err := app.opener().Open(tg.url); err != nil {
						return err
					}
				}
			}
			if !matched {
				return fmt.Errorf("unknown platform %q (twitter, linkedin, email, all)", platform)
			}
			return nil
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().BoolVar(&open, "open", false, "Open the links in the default browser")
	cmd.Flags().StringVar(&platform, "platform", "all", "Limit to one platform: twitter, linkedin or email")

	return cmd
}

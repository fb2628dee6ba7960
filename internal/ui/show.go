package ui

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/summary"
)

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's goals and time blocks",
		Long: `Display the goals and time blocks planned for a day.

Example:
  daygrid show
  daygrid show --date=yesterday`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctrl, err := a.controller(context.Background(), date)
			if err != nil {
				return err
			}

			d := summary.SummarizeDay(ctrl.Date(), ctrl.Snapshot())
			PrintDay(a.out, d, ctrl.Grid(), PrintOpts{Verbose: verbose})
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full block titles")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/summary"
)

func (a *App) historyCmd() *cobra.Command {
	var (
		days    int
		full    bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous days that have goals or blocks",
		Long: `List the previous days, newest first, skipping days with nothing planned.

Example:
  daygrid history
  daygrid history --days=14 --full`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}

			ctx := context.Background()
			ctrl, err := a.controller(ctx, "")
			if err != nil {
				return err
			}

			history := ctrl.History(ctx, days)
			if len(history) == 0 {
				fmt.Fprintf(a.out, "Nothing planned in the last %d days.\n", days)
				return nil
			}

			fmt.Fprintf(a.out, "=== %s ===\n\n", formatHeader(fmt.Sprintf("Last %d days", days)))
			for i, d := range history {
				if !full {
					PrintHistoryRow(a.out, d)
					continue
				}
				if i > 0 {
					fmt.Fprintln(a.out)
				}
				PrintDay(a.out, d, ctrl.Grid(), PrintOpts{})
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", summary.DefaultHistoryDays, "Number of previous days to scan")
	cmd.Flags().BoolVar(&full, "full", false, "Print every day in full")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

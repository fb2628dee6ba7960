package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) blockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Add or remove time blocks",
	}
	cmd.AddCommand(a.blockAddCmd())
	cmd.AddCommand(a.blockRmCmd())
	return cmd
}

func (a *App) blockAddCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a time block",
		Long: `Add a time block to a day. Times are HH:MM and need not align to the grid.

Example:
  daygrid block add "Write documentation" --start=09:00 --end=11:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, err := a.controller(ctx, date)
			if err != nil {
				return err
			}

			b, err := ctrl.AddBlock(ctx, args[0], start, end)
			if err != nil {
				return fmt.Errorf("adding block: %w", err)
			}
			if err := checkSaved(ctrl); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Added block %s: %s %s %s-%s\n",
				ShortID(b.ID), b.Title, ctrl.Date().Format("2006-01-02"), b.StartTime, b.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) blockRmCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm [block-id]",
		Aliases: []string{"remove"},
		Short:   "Remove a time block",
		Long: `Remove a time block by its id or a unique id prefix.

Example:
  daygrid block rm 3f2a9c1b`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, err := a.controller(ctx, date)
			if err != nil {
				return err
			}

			b, ok := ctrl.FindBlock(args[0])
			if !ok {
				return fmt.Errorf("no block matches %q", args[0])
			}
			ctrl.RemoveBlock(ctx, b.ID)
			if err := checkSaved(ctrl); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Removed block %s: %s %s-%s\n", ShortID(b.ID), b.Title, b.StartTime, b.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	return cmd
}

package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/planner"
)

const dateFlagUsage = "Date (YYYY-MM-DD, today, yesterday; default: today)"

func (a *App) goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the day's goals",
	}
	cmd.AddCommand(a.goalAddCmd())
	cmd.AddCommand(a.goalToggleCmd())
	cmd.AddCommand(a.goalRmCmd())
	return cmd
}

func (a *App) goalAddCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a goal",
		Long: `Add a goal to a day.

Example:
  daygrid goal add "Ship the release"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, err := a.controller(ctx, date)
			if err != nil {
				return err
			}

			g, err := ctrl.AddGoal(ctx, args[0])
			if err != nil {
				return fmt.Errorf("adding goal: %w", err)
			}
			if err := checkSaved(ctrl); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Added goal %s: %s\n", ShortID(g.ID), g.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	return cmd
}

func (a *App) goalToggleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "toggle [goal-id]",
		Short: "Mark a goal done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, g, err := a.findGoal(ctx, date, args[0])
			if err != nil {
				return err
			}

			ctrl.ToggleGoal(ctx, g.ID)
			if err := checkSaved(ctrl); err != nil {
				return err
			}

			state := "done"
			if g.Completed {
				state = "not done"
			}
			fmt.Fprintf(a.out, "Marked goal %s %s: %s\n", ShortID(g.ID), state, g.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	return cmd
}

func (a *App) goalRmCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm [goal-id]",
		Aliases: []string{"remove"},
		Short:   "Remove a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, g, err := a.findGoal(ctx, date, args[0])
			if err != nil {
				return err
			}

			ctrl.DeleteGoal(ctx, g.ID)
			if err := checkSaved(ctrl); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Removed goal %s: %s\n", ShortID(g.ID), g.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", dateFlagUsage)
	return cmd
}

func (a *App) findGoal(ctx context.Context, date, ref string) (*planner.Controller, day.Goal, error) {
	ctrl, err := a.controller(ctx, date)
	if err != nil {
		return nil, day.Goal{}, err
	}
	g, ok := ctrl.FindGoal(ref)
	if !ok {
		return nil, day.Goal{}, fmt.Errorf("no goal matches %q", ref)
	}
	return ctrl, g, nil
}

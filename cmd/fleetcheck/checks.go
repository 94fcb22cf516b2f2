package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/linesmerrill/fleetcheck/report"
	"github.com/linesmerrill/fleetcheck/workspace"
)

func newChecksCmd(open opener) *cobra.Command {
	checks := &cobra.Command{
		Use:   "checks",
		Short: "List, show and delete saved checks",
	}

	var vehicleID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved checks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(_ context.Context, s *session) error {
				ws := s.ws
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDATE\tVEHICLE\tDONE\tISSUES")
				for _, c := range ws.Checks(vehicleID) {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d\n",
						c.ID, c.Date, c.VehicleLabel, c.Summary.DoneCount, c.Summary.TotalItems, c.Summary.IssueCount)
				}
				return tw.Flush()
			})
		},
	}
	list.Flags().StringVar(&vehicleID, "vehicle", "", "Only list checks of this vehicle id")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the text summary of a check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(_ context.Context, s *session) error {
				ws := s.ws
				c, ok := ws.Check(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", workspace.ErrCheckNotFound, args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.FormatSummary(c))
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a check for good",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(ctx context.Context, s *session) error {
				ws := s.ws
				if _, ok := ws.Check(args[0]); !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "no check %s\n", args[0])
					return nil
				}
				ws.DeleteCheck(ctx, args[0])
				if err := s.saved(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted check %s\n", args[0])
				return nil
			})
		},
	}

	checks.AddCommand(list, show, del)
	return checks
}

func newVehiclesCmd(open opener) *cobra.Command {
	vehicles := &cobra.Command{
		Use:   "vehicles",
		Short: "Inspect the vehicle registry",
	}
	vehicles.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, open, func(_ context.Context, s *session) error {
				ws := s.ws
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tLABEL\tPLATE\tTUV\tSERVICE")
				for _, v := range ws.Profile().Vehicles {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.DisplayLabel(), v.Plate, v.TuvUntil, v.ServiceDue)
				}
				return tw.Flush()
			})
		},
	})
	return vehicles
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukydev/car-maintenance/internal/session"
)

func newVehicleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Add, delete and list vehicles",
	}

	var mileage string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := session.KeyName(args[0])
			return a.mutate(func(s *session.Session) error {
				if err := s.AddVehicle(name, mileage); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s at %s miles\n", session.DisplayName(name), mileage)
				return nil
			})
		},
	}
	add.Flags().StringVar(&mileage, "mileage", "", "Current odometer reading (required)")
	_ = add.MarkFlagRequired("mileage")

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a vehicle and all of its maintenance items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := session.KeyName(args[0])
			return a.mutate(func(s *session.Session) error {
				if err := s.DeleteVehicle(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", session.DisplayName(name))
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List vehicles and whether they need maintenance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vehicles := a.session.Overview(a.now())
			out := cmd.OutOrStdout()
			if len(vehicles) == 0 {
				fmt.Fprintln(out, "No cars listed!")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VEHICLE\tMILEAGE\tSTATUS")
			for _, v := range vehicles {
				fmt.Fprintf(w, "%s\t%d\t%s\n", session.DisplayName(v.Name), v.Mileage, status(v.Due))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(add, del, list)
	return cmd
}

func newMileageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mileage VEHICLE [MILEAGE]",
		Short: "Show or update a vehicle's mileage",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := session.KeyName(args[0])
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				m, err := a.session.Store().Mileage(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Current Mileage: %d\n", m)
				return nil
			}
			return a.mutate(func(s *session.Session) error {
				if err := s.UpdateMileage(name, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(out, "Current Mileage: %s\n", args[1])
				return nil
			})
		},
	}
}

func status(due bool) string {
	if due {
		return "DUE"
	}
	return "ok"
}

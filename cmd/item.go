package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukydev/car-maintenance/internal/session"
	"github.com/ukydev/car-maintenance/internal/validation"
)

func newItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage a vehicle's maintenance items",
	}
	cmd.AddCommand(
		newItemFreqCmd(a, "add", "Add a maintenance item", (*session.Session).AddItem),
		newItemFreqCmd(a, "edit", "Change an item's frequency, keeping its maintenance record", (*session.Session).EditItem),
		newItemDeleteCmd(a),
		newItemListCmd(a),
		newItemShowCmd(a),
	)
	return cmd
}

type freqFunc func(s *session.Session, vehicle, item, freqMiles, freqMonths string) error

func newItemFreqCmd(a *app, use, short string, apply freqFunc) *cobra.Command {
	var miles, months string
	cmd := &cobra.Command{
		Use:   use + " VEHICLE ITEM",
		Short: short,
		Long:  short + ".\nLeave --miles or --months out to stop tracking that interval.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, item := session.KeyName(args[0]), session.KeyName(args[1])
			return a.mutate(func(s *session.Session) error {
				if err := apply(s, vehicle, item, miles, months); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %s\n", session.DisplayName(item), session.DisplayName(vehicle))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&miles, "miles", "", "Mileage interval")
	cmd.Flags().StringVar(&months, "months", "", "Time interval in months")
	return cmd
}

func newItemDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete VEHICLE ITEM",
		Short: "Delete a maintenance item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, item := session.KeyName(args[0]), session.KeyName(args[1])
			return a.mutate(func(s *session.Session) error {
				if err := s.DeleteItem(vehicle, item); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from %s\n", session.DisplayName(item), session.DisplayName(vehicle))
				return nil
			})
		},
	}
}

func newItemListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list VEHICLE",
		Short: "List a vehicle's maintenance items and whether they are due",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle := session.KeyName(args[0])
			items, err := a.session.ItemStatuses(vehicle, a.now())
			if err != nil {
				return err
			}
			mileage, _ := a.session.Store().Mileage(vehicle)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\nCurrent Mileage: %d\n", session.DisplayName(vehicle), mileage)
			if len(items) == 0 {
				fmt.Fprintln(out, "No maintenance items listed")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tEVERY MILES\tEVERY MONTHS\tSTATUS")
			for _, it := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					session.DisplayName(it.Name),
					validation.FormatOptionalInt(it.FreqMiles),
					validation.FormatOptionalInt(it.FreqMonths),
					status(it.Due))
			}
			return w.Flush()
		},
	}
}

func newItemShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show VEHICLE ITEM",
		Short: "Show an item's frequency and last maintenance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, item := session.KeyName(args[0]), session.KeyName(args[1])
			store := a.session.Store()

			freqMiles, err := store.FreqMiles(vehicle, item)
			if err != nil {
				return err
			}
			freqMonths, _ := store.FreqMonths(vehicle, item)
			lastMileage, _ := store.LastMileage(vehicle, item)
			lastDate, _ := store.LastDate(vehicle, item)
			due, _ := store.ItemNeedsMaintenance(vehicle, item, a.now())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s / %s\n", session.DisplayName(vehicle), session.DisplayName(item))
			fmt.Fprintf(out, "Every:          %s miles, %s months\n", orDash(validation.FormatOptionalInt(freqMiles)), orDash(validation.FormatOptionalInt(freqMonths)))
			fmt.Fprintf(out, "Last performed: at %s miles on %s\n", orDash(validation.FormatOptionalInt(lastMileage)), orDash(validation.FormatDate(lastDate)))
			fmt.Fprintf(out, "Status:         %s\n", status(due))
			return nil
		},
	}
}

func newPerformCmd(a *app) *cobra.Command {
	var mileage, date string
	cmd := &cobra.Command{
		Use:   "perform VEHICLE ITEM",
		Short: "Record that maintenance was performed",
		Long:  "Record the mileage and date (MM/DD/YY) an item's maintenance was performed.\nThe item's frequency is kept. Leaving a value out clears it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicle, item := session.KeyName(args[0]), session.KeyName(args[1])
			return a.mutate(func(s *session.Session) error {
				if err := s.RecordMaintenance(vehicle, item, mileage, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s\n", session.DisplayName(item), session.DisplayName(vehicle))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&mileage, "mileage", "", "Mileage the maintenance was performed at")
	cmd.Flags().StringVar(&date, "date", "", "Date the maintenance was performed (MM/DD/YY)")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

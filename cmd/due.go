package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukydev/car-maintenance/internal/session"
	"github.com/ukydev/car-maintenance/internal/validation"
	"gopkg.in/yaml.v3"
)

func newDueCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Report which vehicles and items need maintenance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := a.session.Report(a.now())
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				writeDueText(out, report)
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q, want text, json or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	return cmd
}

func writeDueText(w io.Writer, report []session.VehicleDue) {
	if len(report) == 0 {
		fmt.Fprintln(w, "No cars need maintenance at this time!")
		return
	}
	fmt.Fprint(w, "Maintenance needed for:\n\n")
	for _, v := range report {
		fmt.Fprintln(w, session.DisplayName(v.Name))
		for _, it := range v.Items {
			var reasons []string
			if it.NextDue.Mileage != nil && v.Mileage > *it.NextDue.Mileage {
				reasons = append(reasons, fmt.Sprintf("past %d miles", *it.NextDue.Mileage))
			}
			if it.NextDue.Date != nil {
				reasons = append(reasons, "due "+validation.FormatDate(it.NextDue.Date))
			}
			line := strings.Repeat(" ", 5) + session.DisplayName(it.Name)
			if len(reasons) > 0 {
				line += " (" + strings.Join(reasons, ", ") + ")"
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write all data to the backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Backup(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backup complete")
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Replace all data with the contents of the backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.mutate(func(s *session.Session) error {
				if err := s.Restore(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d vehicles\n", len(s.Store().Vehicles()))
				return nil
			})
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pb "dental-practice-api/api/practice/v1"
)

func newPlanningCmd(a *app) *cobra.Command {
	var date, view string
	cmd := &cobra.Command{
		Use:   "planning",
		Short: "Show the day grid with placed appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.h.GetPlanning(cmd.Context(), &pb.GetPlanningRequest{Date: date, View: view})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(resp.Label))
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%s view  < %s | %s >", resp.View, resp.Previous, resp.Next)))
			fmt.Fprintln(w)
			for _, b := range resp.Blocks {
				ap := b.Appointment
				fmt.Fprintf(w, "%s  %3dmin  top=%-6g height=%-6g %-16s %-12s %s\n",
					ap.Start, ap.Duration, b.Top, b.Height, ap.Patient, ap.Type, badge(ap.Status, ap.Status))
			}
			s := resp.Summary
			fmt.Fprintf(w, "\n%d rendez-vous: %d confirmés, %d en attente, %d urgents\n",
				s.Total, s.Confirmed, s.Waiting, s.Urgent)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to show, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&view, "view", "day", "navigation step: day or week")
	return cmd
}

func newPatientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patients [search]",
		Short: "List patients matching name, phone or email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.h.ListPatients(cmd.Context(), &pb.ListPatientsRequest{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if resp.NotFound != "" {
				fmt.Fprintln(w, mutedStyle.Render(resp.NotFound))
				return nil
			}
			for _, p := range resp.Patients {
				fmt.Fprintf(w, "%-16s %2d ans  %-15s %-26s %s\n",
					p.Name, p.Age, p.Phone, p.Email, badge(p.Status, p.StatusLabel))
				fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("    dernière visite %s, prochain RDV %s, %s",
					p.LastVisit, p.NextAppointment, strings.Join(p.Treatments, ", "))))
			}
			return nil
		},
	}
}

func newTreatmentsCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "treatments [search]",
		Short: "List treatments matching patient or type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.h.ListTreatments(cmd.Context(), &pb.ListTreatmentsRequest{
				Query:  strings.Join(args, " "),
				Status: status,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if resp.NotFound != "" {
				fmt.Fprintln(w, mutedStyle.Render(resp.NotFound))
				return nil
			}
			for _, t := range resp.Treatments {
				fmt.Fprintf(w, "%-16s %-26s %3d%%  %8.2f€  %s\n",
					t.Patient, t.Type, t.Progress, t.Cost, badge(t.Status, t.StatusLabel))
				for _, s := range t.Sessions {
					mark := "[ ]"
					if s.Completed {
						mark = "[x]"
					}
					fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("    %s %s %s", mark, s.Date, s.Description)))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "all", "all, en_cours, termine or planifie")
	return cmd
}

func newDashboardCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the day's key figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.h.GetDashboard(cmd.Context(), &pb.GetDashboardRequest{Date: date})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			st := resp.Stats
			fmt.Fprintln(w, titleStyle.Render("Tableau de bord "+resp.Date))
			fmt.Fprintf(w, "Patients total     %d\n", st.TotalPatients)
			fmt.Fprintf(w, "RDV aujourd'hui    %d (%d en attente)\n", st.TodayAppointments, st.Waiting)
			fmt.Fprintf(w, "Revenus du mois    %.2f€\n", st.MonthRevenue)
			fmt.Fprintf(w, "Taux occupation    %.0f%%\n", st.Occupancy*100)
			fmt.Fprintln(w)
			for _, ap := range resp.Appointments {
				fmt.Fprintf(w, "%s  %-16s %-12s %s\n", ap.Start, ap.Patient, ap.Type, badge(ap.Status, ap.Status))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day, YYYY-MM-DD (default today)")
	return cmd
}

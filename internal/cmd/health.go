package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

// HealthCmd returns the `doctorcall health` command.
func HealthCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the backend and list connected doctors",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()

			if asJSON {
				res := s.client.CheckHealth(c.Context())
				if err := writeJSON(out, res); err != nil {
					return err
				}
				return res.Err()
			}

			fmt.Fprintln(out, ui.Info("🔍 Checking server health..."))
			if reportHealth(c.Context(), out, s.client) == nil {
				return errBackendUnreachable
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Info("👥 Checking connected doctors..."))
			return reportDoctors(c.Context(), out, s.client).Err()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	return cmd
}

// DoctorsCmd returns the `doctorcall doctors` command.
func DoctorsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctors connected to the backend",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()

			if asJSON {
				res := s.client.GetConnectedDoctors(c.Context())
				if err := writeJSON(out, res); err != nil {
					return err
				}
				return res.Err()
			}
			return reportDoctors(c.Context(), out, s.client).Err()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	return cmd
}

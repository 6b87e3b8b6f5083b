package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/api"
	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

// RunInteractiveCall prompts for call details and initiates the call.
func RunInteractiveCall(ctx context.Context, client *api.Client, fallbackDoctor string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, ui.Notice("🎮 Interactive Mode - Enter call details:"))
	health := reportHealth(ctx, out, client)
	if health == nil {
		return errBackendUnreachable
	}

	var doctorID string
	if len(health.Doctors) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Detail("📋 Available doctors", strings.Join(health.Doctors, ", ")))
		doctorID = prompt(reader, out, fmt.Sprintf("Doctor ID (default: %s): ", health.Doctors[0]), health.Doctors[0])
	} else {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Warn("No doctors connected. Using default: %s", fallbackDoctor))
		doctorID = prompt(reader, out, "Enter doctor ID or press Enter to continue: ", fallbackDoctor)
	}

	patientName := prompt(reader, out, "Patient name: ", "Test Patient")
	symptoms := prompt(reader, out, "Symptoms: ", "Test symptoms")
	appointmentType := prompt(reader, out, "Appointment type (default: Consultation): ", "Consultation")

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Info("📤 Sending call..."))
	res := client.InitiateCall(ctx, api.CallRequest{
		DoctorID:        doctorID,
		PatientName:     patientName,
		AppointmentType: appointmentType,
		Symptoms:        symptoms,
	})
	reportCall(out, res)
	if !res.Success {
		return errCallFailed
	}
	fmt.Fprintln(out, ui.Notice("🔔 CHECK YOUR BROWSER NOW!"))
	return nil
}

// InteractiveCmd returns the `doctorcall interactive` command.
func InteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Prompt for call details and send the call",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			return RunInteractiveCall(c.Context(), s.client, s.cfg.DefaultDoctorID, c.InOrStdin(), c.OutOrStdout())
		},
	}
}

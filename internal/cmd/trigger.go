package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/api"
	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

const triggerUsage = "Usage: doctorcall trigger [doctor_id] [doctor_name] [patient_id] [patient_name]"

// TriggerCmd returns the `doctorcall trigger` command.
func TriggerCmd() *cobra.Command {
	var symptoms string
	cmd := &cobra.Command{
		Use:   "trigger [doctor_id] [doctor_name] [patient_id] [patient_name]",
		Short: "Check the backend, then ring a doctor on behalf of a patient",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			return runTrigger(c.Context(), s, c.OutOrStdout(), args, symptoms)
		},
	}
	cmd.Flags().StringVar(&symptoms, "symptoms", "", "symptoms to send with the call")
	return cmd
}

func runTrigger(ctx context.Context, s *session, out io.Writer, args []string, symptoms string) error {
	fmt.Fprintln(out, ui.Banner("Doctor Call Trigger", 60))

	if reportHealth(ctx, out, s.client) == nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Info("💡 Start the backend at %s and try again", s.client.BaseURL()))
		return errBackendUnreachable
	}
	fmt.Fprintln(out)

	req := api.CallRequest{
		DoctorID:    s.cfg.DefaultDoctorID,
		DoctorName:  s.cfg.DefaultDoctorName,
		PatientID:   s.cfg.DefaultPatientID,
		PatientName: s.cfg.DefaultPatientName,
		Symptoms:    symptoms,
	}
	switch {
	case len(args) == 4:
		req.DoctorID, req.DoctorName, req.PatientID, req.PatientName = args[0], args[1], args[2], args[3]
	case len(args) > 0:
		fmt.Fprintln(out, triggerUsage)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Using default values...")
	}

	fmt.Fprintln(out, ui.Info("📞 Triggering call to %s (ID: %s)", req.DoctorName, req.DoctorID))
	fmt.Fprintln(out, ui.Detail("Patient", fmt.Sprintf("%s (ID: %s)", req.PatientName, req.PatientID)))
	fmt.Fprintln(out, ui.Detail("Endpoint", s.client.BaseURL()+"/api/initiate-call"))
	fmt.Fprintln(out)

	res := s.client.InitiateCall(ctx, req)
	reportCall(out, res)
	fmt.Fprintln(out)

	if !res.Success {
		fmt.Fprintln(out, ui.Failure("Failed to trigger call"))
		return errCallFailed
	}
	fmt.Fprintln(out, ui.Success("Call triggered successfully!"))
	fmt.Fprintln(out, ui.MutedStyle.Render("   Check the doctor UI to see the incoming call notification"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Divider(60))
	return nil
}

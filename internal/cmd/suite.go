package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/doctor-call/cli/internal/api"
	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

type suiteOptions struct {
	quick        bool
	waitTimeout  time.Duration
	pollInterval time.Duration
	confirmDelay time.Duration
}

// SuiteCmd returns the `doctorcall test` command, an end-to-end check of a
// running backend and doctor UI.
func SuiteCmd() *cobra.Command {
	opts := suiteOptions{pollInterval: time.Second}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run health, doctors, call and confirmation checks against the backend",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			if opts.waitTimeout <= 0 {
				opts.waitTimeout = 30 * time.Second
				if opts.quick {
					opts.waitTimeout = 15 * time.Second
				}
			}
			return runSuite(c.Context(), s, c.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.quick, "quick", "q", false, "trigger one call and skip the confirmation step")
	f.DurationVar(&opts.waitTimeout, "wait", 0, "how long to wait for a doctor (default 30s, 15s with --quick)")
	f.DurationVar(&opts.confirmDelay, "confirm-delay", 10*time.Second, "pause between the call and the confirmation")
	return cmd
}

func runSuite(ctx context.Context, s *session, out io.Writer, opts suiteOptions) error {
	title := "🧪 DOCTOR CALL SYSTEM - TEST SUITE"
	if opts.quick {
		title = "⚡ QUICK TEST"
	}
	fmt.Fprintln(out, ui.Banner(title, 60))

	fmt.Fprintln(out, ui.Info("🔍 Checking server health..."))
	health := reportHealth(ctx, out, s.client)
	if health == nil {
		fmt.Fprintln(out, ui.Failure("Cannot proceed - server is not running"))
		return errBackendUnreachable
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Info("👥 Checking connected doctors..."))
	doctors := reportDoctors(ctx, out, s.client)

	var doctorID string
	switch {
	case doctors.Success && len(doctors.Doctors) > 0:
		doctorID = doctors.Doctors[0]
	case len(health.Doctors) > 0:
		doctorID = health.Doctors[0]
	default:
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Warn("Waiting up to %s for a doctor to connect...", opts.waitTimeout))
		id, err := s.client.WaitForDoctor(ctx, opts.waitTimeout, opts.pollInterval)
		if err != nil {
			fmt.Fprintln(out, ui.Failure("Test aborted - no doctor available"))
			fmt.Fprintln(out, ui.Detail("Error", err.Error()))
			return err
		}
		fmt.Fprintln(out, ui.Success("Doctor connected!"))
		fmt.Fprintln(out, ui.Detail("Doctor ID", id))
		doctorID = id
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Info("📞 Triggering incoming call to %s...", doctorID))
	call := s.client.InitiateCall(ctx, api.CallRequest{
		DoctorID:        doctorID,
		PatientName:     "Ahmed Khan",
		AppointmentType: "General Consultation",
		Symptoms:        "Fever, headache, and cough for 3 days",
	})
	reportCall(out, call)
	if !call.Success {
		return errCallFailed
	}
	fmt.Fprintln(out, ui.Notice("   🔔 CHECK YOUR BROWSER NOW!"))

	if !opts.quick {
		if err := confirmStep(ctx, s, out, call.CallID, opts.confirmDelay); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Banner("✅ TEST SUITE COMPLETED", 60))
	return nil
}

func confirmStep(ctx context.Context, s *session, out io.Writer, callID string, delay time.Duration) error {
	if delay > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Warn("Waiting %s before confirming...", delay))
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Info("📅 Simulating appointment confirmation..."))
	slot := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	ack := s.client.ConfirmAppointment(ctx, api.AppointmentConfirmation{
		CallID:          callID,
		PatientName:     "Ahmed Khan",
		DoctorName:      "Dr. Sarah",
		AppointmentTime: slot.Format("2006-01-02T15:04:05"),
		AppointmentType: "General Consultation",
		Notes:           "Patient prefers afternoon appointments. Follow-up needed in 2 weeks.",
	})
	reportAck(out, "Appointment confirmed", ack)
	s.log.Debug("confirmation sent", zap.String("call_id", callID), zap.Bool("success", ack.Success))
	return ack.Err()
}

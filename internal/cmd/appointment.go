package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/api"
)

// ConfirmCmd returns the `doctorcall confirm` command.
func ConfirmCmd() *cobra.Command {
	var in api.AppointmentConfirmation
	cmd := &cobra.Command{
		Use:   "confirm <call_id>",
		Short: "Confirm the appointment agreed on a call",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			in.CallID = args[0]
			res := s.client.ConfirmAppointment(c.Context(), in)
			reportAck(c.OutOrStdout(), "Appointment confirmed", res)
			return res.Err()
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.PatientName, "patient", "", "patient name")
	f.StringVar(&in.DoctorName, "doctor-name", "", "doctor display name")
	f.StringVar(&in.AppointmentTime, "time", "", "appointment time (ISO 8601)")
	f.StringVar(&in.AppointmentType, "type", "", "appointment type")
	f.StringVar(&in.Notes, "notes", "", "free-form notes")
	return cmd
}

// RejectCmd returns the `doctorcall reject` command.
func RejectCmd() *cobra.Command {
	var in api.CallRejection
	cmd := &cobra.Command{
		Use:   "reject <call_id>",
		Short: "Reject a call on the doctor's behalf",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			in.CallID = args[0]
			res := s.client.RejectCall(c.Context(), in)
			reportAck(c.OutOrStdout(), "Call rejected", res)
			return res.Err()
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Reason, "reason", "", "why the call was rejected")
	f.StringVar(&in.PatientID, "patient-id", "", "patient id")
	f.StringVar(&in.DoctorID, "doctor-id", "", "doctor id")
	return cmd
}

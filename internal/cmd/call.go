package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/api"
)

// CallCmd returns the `doctorcall call` command. It prints the call result
// as JSON so other tools can consume it.
func CallCmd() *cobra.Command {
	var in api.CallRequest
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Initiate a doctor call and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			res := s.client.InitiateCall(c.Context(), in)
			if err := writeJSON(c.OutOrStdout(), res); err != nil {
				return err
			}
			return res.Err()
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.DoctorID, "doctor", "", "doctor id (required)")
	f.StringVar(&in.PatientName, "patient", "", "patient name (required)")
	f.StringVar(&in.AppointmentType, "type", "", "appointment type")
	f.StringVar(&in.Symptoms, "symptoms", "", "patient symptoms")
	f.StringVar(&in.DoctorName, "doctor-name", "", "doctor display name")
	f.StringVar(&in.PatientID, "patient-id", "", "patient id")
	f.StringVar(&in.CallID, "call-id", "", "call id (default call_<unix seconds>)")
	_ = cmd.MarkFlagRequired("doctor")
	_ = cmd.MarkFlagRequired("patient")
	return cmd
}

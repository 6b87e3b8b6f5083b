package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/cmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "doctorcall",
		Short:         "doctorcall - doctor call backend client",
		Long:          "doctorcall: check the doctor call backend, list connected doctors, and ring doctors on behalf of patients.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.BindGlobalFlags(root)

	root.AddCommand(cmd.TriggerCmd())
	root.AddCommand(cmd.HealthCmd())
	root.AddCommand(cmd.DoctorsCmd())
	root.AddCommand(cmd.CallCmd())
	root.AddCommand(cmd.WaitCmd())
	root.AddCommand(cmd.ConfirmCmd())
	root.AddCommand(cmd.RejectCmd())
	root.AddCommand(cmd.InteractiveCmd())
	root.AddCommand(cmd.SuiteCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

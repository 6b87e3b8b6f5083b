package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

// WaitCmd returns the `doctorcall wait` command.
func WaitCmd() *cobra.Command {
	var (
		timeout  time.Duration
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until a doctor connects to the backend",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()

			if isInteractiveTerminal(c.InOrStdin()) && isInteractiveTerminal(out) {
				p := tea.NewProgram(ui.NewWaitModel(s.client, timeout, interval),
					tea.WithInput(c.InOrStdin()),
					tea.WithOutput(out),
					tea.WithContext(c.Context()),
				)
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("tui error: %w", err)
				}
				return final.(ui.WaitModel).Err()
			}

			fmt.Fprintln(out, ui.Warn("Waiting for doctor to connect..."))
			fmt.Fprintln(out, ui.MutedStyle.Render(fmt.Sprintf("   Will wait up to %s", timeout)))
			id, err := s.client.WaitForDoctor(c.Context(), timeout, interval)
			if err != nil {
				fmt.Fprintln(out, ui.Failure("%s", err.Error()))
				return err
			}
			fmt.Fprintln(out, ui.Success("Doctor connected!"))
			fmt.Fprintln(out, ui.Detail("Doctor ID", id))
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "how long to wait")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval")
	return cmd
}

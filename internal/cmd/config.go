package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/config"
	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

var errNothingToSet = errors.New("nothing to set: pass at least one flag")

// ConfigCmd returns the `doctorcall config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the stored CLI configuration",
	}
	cmd.AddCommand(configSetCmd(), configPathCmd())
	return cmd
}

func configSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Persist backend URL, timeouts and default call values",
		Long:  "Persist values to ~/.doctorcall/config. The global --backend-url flag sets backend_url; $" + config.EnvBackendURL + " is never written.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigSet(c, c.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.String("default-doctor-id", "", "doctor id used by trigger without arguments")
	f.String("default-doctor-name", "", "doctor name used by trigger without arguments")
	f.String("default-patient-id", "", "patient id used by trigger without arguments")
	f.String("default-patient-name", "", "patient name used by trigger without arguments")
	f.Duration("health-timeout", 0, "timeout for health and doctor list requests")
	f.Duration("call-timeout", 0, "timeout for call and appointment requests")
	return cmd
}

func runConfigSet(c *cobra.Command, out io.Writer) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	changed := false
	if f := c.Flag(flagBackendURL); f != nil && f.Changed {
		cfg.BackendURL = f.Value.String()
		changed = true
	}

	flags := c.Flags()
	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"default-doctor-id", &cfg.DefaultDoctorID},
		{"default-doctor-name", &cfg.DefaultDoctorName},
		{"default-patient-id", &cfg.DefaultPatientID},
		{"default-patient-name", &cfg.DefaultPatientName},
	} {
		if !flags.Changed(field.name) {
			continue
		}
		v, _ := flags.GetString(field.name)
		if v == "" {
			return fmt.Errorf("--%s cannot be empty", field.name)
		}
		*field.dst = v
		changed = true
	}

	if flags.Changed("health-timeout") {
		if cfg.HealthTimeout, _ = flags.GetDuration("health-timeout"); cfg.HealthTimeout <= 0 {
			return errors.New("--health-timeout must be positive")
		}
		changed = true
	}
	if flags.Changed("call-timeout") {
		if cfg.CallTimeout, _ = flags.GetDuration("call-timeout"); cfg.CallTimeout <= 0 {
			return errors.New("--call-timeout must be positive")
		}
		changed = true
	}

	if !changed {
		return errNothingToSet
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintln(out, ui.Success("Config saved to %s", config.Path()))
	fmt.Fprintln(out, ui.Detail("Backend URL", cfg.BackendURL))
	fmt.Fprintln(out, ui.Detail("Default doctor", cfg.DefaultDoctorID+" ("+cfg.DefaultDoctorName+")"))
	fmt.Fprintln(out, ui.Detail("Default patient", cfg.DefaultPatientID+" ("+cfg.DefaultPatientName+")"))
	return nil
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), config.Path())
			return nil
		},
	}
}

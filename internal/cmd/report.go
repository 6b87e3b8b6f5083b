package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gravitrone/doctor-call/cli/internal/api"
	"github.com/gravitrone/doctor-call/cli/internal/ui"
)

// reportHealth prints the backend health and returns it, or nil when the
// backend could not be reached.
func reportHealth(ctx context.Context, out io.Writer, client *api.Client) *api.HealthStatus {
	res := client.CheckHealth(ctx)
	if !res.Success {
		fmt.Fprintln(out, ui.Failure("Server is not reachable"))
		fmt.Fprintln(out, ui.Detail("Error", res.Error))
		return nil
	}

	fmt.Fprintln(out, ui.Success("Server is running"))
	fmt.Fprintln(out, ui.Detail("Connected doctors", res.Data.ConnectedDoctors))
	if len(res.Data.Doctors) > 0 {
		fmt.Fprintln(out, ui.Detail("Doctor IDs", strings.Join(res.Data.Doctors, ", ")))
	}
	if res.Data.ActiveRealtimeCalls != nil {
		fmt.Fprintln(out, ui.Detail("Active calls", *res.Data.ActiveRealtimeCalls))
	}
	return res.Data
}

func reportDoctors(ctx context.Context, out io.Writer, client *api.Client) api.DoctorsResult {
	res := client.GetConnectedDoctors(ctx)
	switch {
	case !res.Success:
		fmt.Fprintln(out, ui.Failure("Could not check doctors"))
		fmt.Fprintln(out, ui.Detail("Error", res.Error))
	case len(res.Doctors) == 0:
		fmt.Fprintln(out, ui.Warn("No doctors currently connected"))
		fmt.Fprintln(out, ui.MutedStyle.Render("   Open the doctor UI in a browser and wait for it to connect."))
	default:
		fmt.Fprintln(out, ui.Success("%d doctor(s) connected", len(res.Doctors)))
		fmt.Fprintln(out, ui.Detail("Doctors", strings.Join(res.Doctors, ", ")))
	}
	return res
}

func reportCall(out io.Writer, res api.CallResult) {
	if res.Success {
		fmt.Fprintln(out, ui.Success("Success!"))
		fmt.Fprintln(out, ui.Detail("Call ID", res.CallID))
		fmt.Fprintln(out, ui.Detail("Message", res.Message))
		return
	}

	if res.Status > 0 {
		fmt.Fprintln(out, ui.Failure("Error: %d", res.Status))
	} else {
		fmt.Fprintln(out, ui.Failure("Error"))
	}
	fmt.Fprintln(out, ui.Detail("Reason", res.Error))
	if res.ServerError != "" {
		fmt.Fprintln(out, ui.Detail("Backend said", res.ServerError))
	}
	if len(res.AvailableDoctors) > 0 {
		fmt.Fprintln(out, ui.Detail("Available doctors", strings.Join(res.AvailableDoctors, ", ")))
	}
	if res.Kind == api.KindConnection {
		fmt.Fprintln(out, ui.MutedStyle.Render("   Make sure the backend is running at "+res.BackendURL))
	}
}

func reportAck(out io.Writer, label string, res api.AckResult) {
	if res.Success {
		fmt.Fprintln(out, ui.Success("%s", label))
		fmt.Fprintln(out, ui.Detail("Message", res.Message))
		return
	}
	fmt.Fprintln(out, ui.Failure("%s failed", label))
	fmt.Fprintln(out, ui.Detail("Error", res.Error))
}

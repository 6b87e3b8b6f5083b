package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoDoctorConnected is returned when WaitForDoctor gives up.
var ErrNoDoctorConnected = errors.New("no doctor connected")

// GetConnectedDoctors lists the doctors currently connected to the backend.
func (c *Client) GetConnectedDoctors(ctx context.Context) DoctorsResult {
	data, status, err := c.get(ctx, pathDoctors)
	if err != nil {
		return DoctorsResult{
			Error: fmt.Sprintf("Cannot reach backend: %v", err),
			Kind:  classify(err),
		}
	}
	if status != http.StatusOK {
		return DoctorsResult{
			Error:  fmt.Sprintf("Failed to get doctors: HTTP %d", status),
			Status: status,
			Kind:   KindHTTP,
		}
	}

	resp, err := decode[doctorsResponse](data)
	if err != nil {
		return DoctorsResult{
			Error:  fmt.Sprintf("Cannot reach backend: %v", err),
			Status: status,
			Kind:   KindUnexpected,
		}
	}
	doctors := resp.ConnectedDoctors
	if doctors == nil {
		doctors = []string{}
	}
	return DoctorsResult{Success: true, Doctors: doctors, Count: resp.Count, Status: status}
}

// WaitForDoctor polls the doctor list every interval until one is connected
// and returns its id. It stops at the first failed poll, when maxWait
// elapses (ErrNoDoctorConnected) or when ctx is done.
func (c *Client) WaitForDoctor(ctx context.Context, maxWait, interval time.Duration) (string, error) {
	if interval <= 0 {
		interval = time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res := c.GetConnectedDoctors(waitCtx)
		if res.Success && len(res.Doctors) > 0 {
			return res.Doctors[0], nil
		}
		if waitCtx.Err() != nil {
			return "", waitErr(ctx, maxWait)
		}
		if !res.Success {
			return "", res.Err()
		}

		select {
		case <-waitCtx.Done():
			return "", waitErr(ctx, maxWait)
		case <-ticker.C:
		}
	}
}

func waitErr(parent context.Context, maxWait time.Duration) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w after %s", ErrNoDoctorConnected, maxWait)
}

package api

import (
	"context"
	"fmt"
	"net/http"
)

// CheckHealth calls /health and returns the backend's view of connected doctors.
func (c *Client) CheckHealth(ctx context.Context) HealthResult {
	data, status, err := c.get(ctx, pathHealth)
	if err != nil {
		return HealthResult{
			Error: fmt.Sprintf("Cannot reach backend: %v", err),
			Kind:  classify(err),
		}
	}
	if status != http.StatusOK {
		return HealthResult{
			Error:  fmt.Sprintf("Health check failed: HTTP %d", status),
			Status: status,
			Kind:   KindHTTP,
		}
	}

	health, err := decode[HealthStatus](data)
	if err != nil {
		return HealthResult{
			Error:  fmt.Sprintf("Cannot reach backend: %v", err),
			Status: status,
			Kind:   KindUnexpected,
		}
	}
	return HealthResult{Success: true, Data: health, Status: status}
}

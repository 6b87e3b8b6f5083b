package api

import "time"

// DefaultBaseURL is the single source of truth for the backend target.
const DefaultBaseURL = "http://localhost:3001"

const (
	// DefaultHealthTimeout bounds the read-only endpoints.
	DefaultHealthTimeout = 5 * time.Second
	// DefaultCallTimeout bounds the call and appointment endpoints.
	DefaultCallTimeout = 10 * time.Second
)

// Backend paths.
const (
	pathHealth             = "/health"
	pathDoctors            = "/api/doctors"
	pathInitiateCall       = "/api/initiate-call"
	pathConfirmAppointment = "/api/confirm-appointment"
	pathRejectCall         = "/api/reject-call"
)

// NewDefaultClient builds a client pointed at the default backend URL.
func NewDefaultClient(opts ...Option) *Client {
	return NewClient(DefaultBaseURL, opts...)
}

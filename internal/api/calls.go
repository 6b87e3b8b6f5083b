package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	errDoctorNotConnected = "Doctor not connected to the system"
	errTimedOut           = "Request to backend timed out"
	defaultCallMessage    = "Call initiated successfully"
)

// NewCallID derives a call id from t as call_<unix seconds>.
func NewCallID(t time.Time) string {
	return fmt.Sprintf("call_%d", t.Unix())
}

// InitiateCall asks the backend to ring the doctor. It never returns a raw
// error: every failure is folded into the result.
func (c *Client) InitiateCall(ctx context.Context, in CallRequest) CallResult {
	doctorID := strings.TrimSpace(in.DoctorID)
	patientName := strings.TrimSpace(in.PatientName)
	switch {
	case doctorID == "":
		return CallResult{Error: "doctor id is required", Kind: KindInvalidRequest}
	case patientName == "":
		return CallResult{Error: "patient name is required", DoctorID: doctorID, Kind: KindInvalidRequest}
	}

	callID := strings.TrimSpace(in.CallID)
	if callID == "" {
		callID = NewCallID(c.now())
	}

	payload := initiateCallPayload{
		DoctorID:        doctorID,
		PatientName:     patientName,
		PatientID:       in.PatientID,
		AppointmentType: in.AppointmentType,
		DoctorName:      in.DoctorName,
		Symptoms:        in.Symptoms,
		CallID:          callID,
	}

	data, status, err := c.post(ctx, pathInitiateCall, payload)
	if err != nil {
		return c.callFault(err, doctorID)
	}

	switch status {
	case http.StatusOK:
		resp, err := decode[initiateCallResponse](data)
		if err != nil {
			return CallResult{
				Error:    fmt.Sprintf("Unexpected error: %v", err),
				DoctorID: doctorID,
				Status:   status,
				Kind:     KindUnexpected,
			}
		}
		result := CallResult{
			Success:     true,
			CallID:      resp.CallID,
			Message:     resp.Message,
			DoctorID:    doctorID,
			PatientName: patientName,
			Status:      status,
		}
		if result.CallID == "" {
			result.CallID = callID
		}
		if result.Message == "" {
			result.Message = defaultCallMessage
		}
		return result

	case http.StatusNotFound:
		result := CallResult{
			Error:    errDoctorNotConnected,
			DoctorID: doctorID,
			Status:   status,
			Kind:     KindDoctorNotConnected,
		}
		// An undecodable 404 body still means the doctor is absent.
		if resp, err := decode[doctorNotConnectedResponse](data); err == nil {
			result.AvailableDoctors = resp.AvailableDoctors
			result.ServerError = resp.Error
		}
		return result

	default:
		result := CallResult{
			Error:    fmt.Sprintf("Failed to initiate call: HTTP %d", status),
			DoctorID: doctorID,
			Status:   status,
			Kind:     KindHTTP,
		}
		if msg, ok := extractAPIErrorBody(data); ok {
			result.ServerError = msg
		}
		return result
	}
}

func (c *Client) callFault(err error, doctorID string) CallResult {
	kind := classify(err)
	switch kind {
	case KindConnection:
		return CallResult{
			Error:      fmt.Sprintf("Cannot connect to doctor call backend at %s. Is the server running?", c.baseURL),
			BackendURL: c.baseURL,
			Kind:       kind,
		}
	case KindTimeout:
		return CallResult{Error: errTimedOut, DoctorID: doctorID, Kind: kind}
	default:
		return CallResult{
			Error:    fmt.Sprintf("Unexpected error: %v", err),
			DoctorID: doctorID,
			Kind:     KindUnexpected,
		}
	}
}

// ConfirmAppointment reports a doctor-confirmed appointment to the backend.
func (c *Client) ConfirmAppointment(ctx context.Context, in AppointmentConfirmation) AckResult {
	in.CallID = strings.TrimSpace(in.CallID)
	if in.CallID == "" {
		return AckResult{Error: "call id is required", Kind: KindInvalidRequest}
	}
	return c.postAck(ctx, pathConfirmAppointment, in, in.CallID, "confirm appointment", "Appointment confirmed")
}

// RejectCall tells the backend the doctor declined the call.
func (c *Client) RejectCall(ctx context.Context, in CallRejection) AckResult {
	in.CallID = strings.TrimSpace(in.CallID)
	if in.CallID == "" {
		return AckResult{Error: "call id is required", Kind: KindInvalidRequest}
	}
	return c.postAck(ctx, pathRejectCall, in, in.CallID, "reject call", "Call rejected")
}

func (c *Client) postAck(ctx context.Context, path string, body any, callID, action, fallback string) AckResult {
	data, status, err := c.post(ctx, path, body)
	if err != nil {
		kind := classify(err)
		msg := fmt.Sprintf("Cannot reach backend: %v", err)
		if kind == KindTimeout {
			msg = errTimedOut
		}
		return AckResult{CallID: callID, Error: msg, Kind: kind}
	}

	if status != http.StatusOK {
		msg := fmt.Sprintf("Failed to %s: HTTP %d", action, status)
		if serverMsg, ok := extractAPIErrorBody(data); ok {
			msg += ": " + serverMsg
		}
		return AckResult{CallID: callID, Error: msg, Status: status, Kind: KindHTTP}
	}

	resp, err := decode[ackResponse](data)
	if err != nil {
		return AckResult{
			CallID: callID,
			Error:  fmt.Sprintf("Unexpected error: %v", err),
			Status: status,
			Kind:   KindUnexpected,
		}
	}
	if resp.Success != nil && !*resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = fmt.Sprintf("Failed to %s", action)
		}
		return AckResult{CallID: callID, Error: msg, Status: status, Kind: KindHTTP}
	}

	msg := resp.Message
	if msg == "" {
		msg = fallback
	}
	return AckResult{Success: true, CallID: callID, Message: msg, Status: status}
}

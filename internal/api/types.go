package api

// --- Calls ---

// CallRequest holds the details of a doctor call. DoctorID and PatientName
// are required; CallID is generated when empty.
type CallRequest struct {
	DoctorID        string
	PatientName     string
	AppointmentType string
	DoctorName      string
	Symptoms        string
	PatientID       string
	CallID          string
}

// initiateCallPayload is the wire body for /api/initiate-call. It carries the
// union of both field sets the backend has been sent historically.
type initiateCallPayload struct {
	DoctorID        string `json:"doctorId"`
	PatientName     string `json:"patientName"`
	PatientID       string `json:"patientId,omitempty"`
	AppointmentType string `json:"appointmentType,omitempty"`
	DoctorName      string `json:"doctorName,omitempty"`
	Symptoms        string `json:"symptoms,omitempty"`
	CallID          string `json:"callId"`
}

type initiateCallResponse struct {
	CallID  string `json:"callId"`
	Message string `json:"message"`
}

type doctorNotConnectedResponse struct {
	Error            string   `json:"error"`
	AvailableDoctors []string `json:"availableDoctors"`
}

// CallResult is the outcome of InitiateCall. Exactly one of Message and
// Error is set; Kind tags the failure.
type CallResult struct {
	Success          bool     `json:"success"`
	CallID           string   `json:"call_id,omitempty"`
	Message          string   `json:"message,omitempty"`
	Error            string   `json:"error,omitempty"`
	AvailableDoctors []string `json:"available_doctors,omitempty"`
	DoctorID         string   `json:"doctor_id,omitempty"`
	PatientName      string   `json:"patient_name,omitempty"`
	BackendURL       string   `json:"backend_url,omitempty"`
	ServerError      string   `json:"server_error,omitempty"`
	Status           int      `json:"status,omitempty"`
	Kind             Kind     `json:"kind,omitempty"`
}

// Err returns the failure as a *CallError, or nil on success.
func (r CallResult) Err() error {
	return failure(r.Success, r.Kind, r.Status, r.Error)
}

// --- Health ---

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status              string   `json:"status,omitempty"`
	ConnectedDoctors    int      `json:"connectedDoctors"`
	Doctors             []string `json:"doctors,omitempty"`
	ActiveRealtimeCalls *int     `json:"activeRealtimeCalls,omitempty"`
	OpenAI              *bool    `json:"openai,omitempty"`
}

// HealthResult is the outcome of CheckHealth.
type HealthResult struct {
	Success bool          `json:"success"`
	Data    *HealthStatus `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	Status  int           `json:"status,omitempty"`
	Kind    Kind          `json:"kind,omitempty"`
}

// Err returns the failure as a *CallError, or nil on success.
func (r HealthResult) Err() error {
	return failure(r.Success, r.Kind, r.Status, r.Error)
}

// --- Doctors ---

type doctorsResponse struct {
	ConnectedDoctors []string `json:"connectedDoctors"`
	Count            int      `json:"count"`
}

// DoctorsResult is the outcome of GetConnectedDoctors.
type DoctorsResult struct {
	Success bool     `json:"success"`
	Doctors []string `json:"doctors"`
	Count   int      `json:"count"`
	Error   string   `json:"error,omitempty"`
	Status  int      `json:"status,omitempty"`
	Kind    Kind     `json:"kind,omitempty"`
}

// Err returns the failure as a *CallError, or nil on success.
func (r DoctorsResult) Err() error {
	return failure(r.Success, r.Kind, r.Status, r.Error)
}

// --- Appointments ---

// AppointmentConfirmation is posted once a doctor confirms the appointment.
type AppointmentConfirmation struct {
	CallID          string `json:"callId"`
	PatientName     string `json:"patientName,omitempty"`
	DoctorName      string `json:"doctorName,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
	AppointmentType string `json:"appointmentType,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// CallRejection is posted when a doctor declines a call.
type CallRejection struct {
	CallID    string `json:"callId"`
	Reason    string `json:"reason,omitempty"`
	PatientID string `json:"patientId,omitempty"`
	DoctorID  string `json:"doctorId,omitempty"`
}

type ackResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// AckResult is the outcome of ConfirmAppointment and RejectCall.
type AckResult struct {
	Success bool   `json:"success"`
	CallID  string `json:"call_id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
}

// Err returns the failure as a *CallError, or nil on success.
func (r AckResult) Err() error {
	return failure(r.Success, r.Kind, r.Status, r.Error)
}

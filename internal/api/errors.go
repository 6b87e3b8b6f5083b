package api

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
)

// Kind tags why an operation failed. The zero value means success.
type Kind string

const (
	KindNone               Kind = ""
	KindInvalidRequest     Kind = "invalid_request"
	KindConnection         Kind = "connection"
	KindTimeout            Kind = "timeout"
	KindHTTP               Kind = "http"
	KindDoctorNotConnected Kind = "doctor_not_connected"
	KindUnexpected         Kind = "unexpected"
)

// CallError is the error form of a failed result.
type CallError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *CallError) Error() string {
	return e.Message
}

// IsKind reports whether err is a *CallError of the given kind.
func IsKind(err error, kind Kind) bool {
	var callErr *CallError
	return errors.As(err, &callErr) && callErr.Kind == kind
}

func failure(success bool, kind Kind, status int, message string) error {
	if success {
		return nil
	}
	return &CallError{Kind: kind, Status: status, Message: message}
}

// classify maps a transport error to a failure kind.
func classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindConnection
	}
	switch {
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET), errors.Is(err, syscall.EPIPE):
		return KindConnection
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// the backend accepted the connection and dropped it
		return KindConnection
	}
	return KindUnexpected
}

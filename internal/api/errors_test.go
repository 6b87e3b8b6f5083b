package api

import (
	"context"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "deadline", err: fmt.Errorf("request failed: %w", context.DeadlineExceeded), want: KindTimeout},
		{name: "dial", err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, want: KindConnection},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "backend"}, want: KindConnection},
		{name: "reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), want: KindConnection},
		{name: "dropped", err: fmt.Errorf("request failed: %w", io.EOF), want: KindConnection},
		{name: "truncated", err: fmt.Errorf("read response: %w", io.ErrUnexpectedEOF), want: KindConnection},
		{name: "broken pipe", err: &net.OpError{Op: "write", Net: "tcp", Err: syscall.EPIPE}, want: KindConnection},
		{name: "cancelled", err: context.Canceled, want: KindUnexpected},
		{name: "other", err: assert.AnError, want: KindUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.err))
		})
	}
}

func TestCallErrorMessage(t *testing.T) {
	err := &CallError{Kind: KindHTTP, Status: 500, Message: "Failed to initiate call: HTTP 500"}
	assert.Equal(t, "Failed to initiate call: HTTP 500", err.Error())

	err = &CallError{Kind: KindTimeout, Message: "Request to backend timed out"}
	assert.Equal(t, "Request to backend timed out", err.Error())
}

func TestResultErrNilOnSuccess(t *testing.T) {
	assert.NoError(t, CallResult{Success: true}.Err())
	assert.NoError(t, HealthResult{Success: true}.Err())
	assert.NoError(t, DoctorsResult{Success: true}.Err())
	assert.NoError(t, AckResult{Success: true}.Err())
	assert.True(t, IsKind(CallResult{Kind: KindTimeout, Error: "x"}.Err(), KindTimeout))
}

package directory

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Outcome classifies how a directory API call ended.
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeEmpty          Outcome = "empty"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeRejected       Outcome = "rejected"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeParseError     Outcome = "parse_error"
	OutcomeTimeout        Outcome = "timeout"
	OutcomeCanceled       Outcome = "canceled"
)

// Failed reports whether the outcome carries no usable value.
func (o Outcome) Failed() bool {
	return o != OutcomeSuccess && o != OutcomeEmpty
}

// Unreachable reports whether the server could not be reached or did not answer in time.
func (o Outcome) Unreachable() bool {
	return o == OutcomeTransportError || o == OutcomeTimeout
}

// FetchError is the failure side of a directory API call.
type FetchError struct {
	Op         string
	Kind       Outcome
	StatusCode int
	Message    string // Backend-provided message, if any.
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the outcome carried by err, or OutcomeTransportError for foreign errors.
func KindOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return OutcomeTransportError
}

func IsNotFound(err error) bool {
	return KindOf(err) == OutcomeNotFound
}

func IsTimeout(err error) bool {
	return KindOf(err) == OutcomeTimeout
}

// classifyTransport maps a failed round trip to an outcome. parent is the
// caller's context, ctx the per-call context carrying the fetch deadline.
func classifyTransport(parent, ctx context.Context, err error) Outcome {
	if errors.Is(parent.Err(), context.Canceled) {
		return OutcomeCanceled
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return OutcomeTimeout
	}
	return OutcomeTransportError
}

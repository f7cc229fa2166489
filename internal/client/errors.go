package client

import "errors"

// UnexpectedErrorMessage is shown for any failure that is not a
// recognizable transport error. It never leaks internal detail.
const UnexpectedErrorMessage = "An unexpected error occurred"

// networkErrorMessage is the message for failures where no HTTP
// response was received at all.
const networkErrorMessage = "Network Error"

// TransportError is a failure originating from the network or HTTP
// layer: a failed round trip or a non-2xx response.
type TransportError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string { return e.Message }

// Unwrap exposes the underlying round-trip error, if any.
func (e *TransportError) Unwrap() error { return e.Err }

// ErrorMessage returns the user-facing text for a failure: transport
// errors pass their message through, anything else gets the generic
// substitute.
func ErrorMessage(err error) string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Message
	}
	return UnexpectedErrorMessage
}

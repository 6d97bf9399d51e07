package stomp

import "github.com/pkg/errors"

// NotConnected is returned by any operation that requires an open session
// when the Client is not connected.
type NotConnectedError string

func (e NotConnectedError) Error() string {
	return "not connected" + errSuffix(string(e))
}

// BadScheme is returned by ParseClientOpts when the URI scheme is
// neither "stomp" nor "stomp+ssl".
type BadSchemeError string

func (e BadSchemeError) Error() string {
	return "unsupported uri scheme" + errSuffix(string(e))
}

// BadAckMode is returned by Subscribe when the caller supplies an ack mode
// other than auto, client or client-individual.
type BadAckModeError string

func (e BadAckModeError) Error() string {
	return "unsupported ack mode" + errSuffix(string(e))
}

// ProtocolError is returned when the broker sends a frame the client did
// not expect: a non-CONNECTED response to CONNECT, or an ERROR frame routed
// to the default error handler.
type ProtocolError struct {
	Message string
	Body    []byte
}

func (e *ProtocolError) Error() string {
	return "protocol error : " + e.Message
}

// HeartbeatTimeout is returned by the default missed-heartbeat handler when
// the watchdog in WaitForMessages fires.
type HeartbeatTimeout struct {
	LastActivity string
}

func (e *HeartbeatTimeout) Error() string {
	return "missed heartbeat, last activity at " + e.LastActivity
}

// TransportError wraps a failure from the underlying byte stream (read,
// write or setting a read deadline). The original error is wrapped with
// pkg/errors and reachable through Unwrap, so callers can still inspect it
// with the standard errors.As / errors.Is.
type TransportError struct {
	cause error
}

func newTransportError(context string, cause error) *TransportError {
	return &TransportError{cause: errors.Wrap(cause, context)}
}

func (e *TransportError) Error() string {
	return e.cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// ClientError covers misuse of the API that doesn't fit one of the other
// kinds above (bad frame from the wire, no subscription for a destination
// passed to UnsubscribeDestination).
type ClientError string

func (e ClientError) Error() string {
	return "client error" + errSuffix(string(e))
}

func errSuffix(s string) string {
	if s == "" {
		return ""
	}
	return " : " + s
}

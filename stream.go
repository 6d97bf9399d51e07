package stomp

import (
	"errors"
	"io"
	"time"
)

// Stream is the byte-stream abstraction the core depends on. It is
// satisfied directly by a net.Conn (TCP or TLS-wrapped); dialing, TLS
// wrapping and connection-string resolution are the caller's job and are
// never done by this package.
//
// SetReadDeadline stands in for a blocking select() over a file
// descriptor, which Go has no portable equivalent of for a single stream:
// the dispatch loop arms a deadline before each read and treats a
// resulting timeout identically to "nothing became readable in time".
type Stream interface {
	io.Reader
	io.Writer
	io.Closer
	SetReadDeadline(deadline time.Time) error
}

// isTimeout reports whether err is a deadline-exceeded error from a Stream
// read, as opposed to any other transport failure. The read path wraps the
// underlying net.Error in a *TransportError for call-site context, so this
// walks the Unwrap chain with errors.As rather than type-asserting err
// directly.
func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	var te timeouter
	return errors.As(err, &te) && te.Timeout()
}

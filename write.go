package stomp

import (
	"bufio"
	"strconv"
)

// writeFrame serializes command with headers and body onto w: verb CRLF,
// then each header CRLF, then a blank CRLF. Callers append the body and
// NULL terminator themselves (writeBodyFrame, writeBodylessFrame), since
// the finish sequence differs slightly between the two.
//
// Grounded on the teacher's write.go (bufio.Writer, WriteByte for the NULL
// terminator, Flush before returning), generalized from a fixed header map
// to the ordered Headers type so header order is preserved on the wire.
func writeFrame(w *bufio.Writer, command string, headers Headers) error {
	if _, err := w.WriteString(command); err != nil {
		return newTransportError("write command", err)
	}
	if err := w.WriteByte('\r'); err != nil {
		return newTransportError("write command terminator", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return newTransportError("write command terminator", err)
	}

	for _, kv := range headers.Entries() {
		if _, err := w.WriteString(kv[0]); err != nil {
			return newTransportError("write header name", err)
		}
		if err := w.WriteByte(':'); err != nil {
			return newTransportError("write header separator", err)
		}
		if _, err := w.WriteString(encodeValue(kv[1])); err != nil {
			return newTransportError("write header value", err)
		}
		if err := w.WriteByte('\r'); err != nil {
			return newTransportError("write header terminator", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return newTransportError("write header terminator", err)
		}
	}

	if err := w.WriteByte('\r'); err != nil {
		return newTransportError("write header block terminator", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return newTransportError("write header block terminator", err)
	}

	return nil
}

// writeBodyFrame writes a frame whose finish sequence is just the body
// followed by a single NULL.
func writeBodyFrame(w *bufio.Writer, command string, headers Headers, body []byte) error {
	h := headers
	h.Set("content-length", strconv.Itoa(len(body)))
	if err := writeFrame(w, command, h); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return newTransportError("write body", err)
		}
	}
	if err := w.WriteByte(0x00); err != nil {
		return newTransportError("write terminator", err)
	}
	return w.Flush()
}

// writeBodylessFrame writes a frame with no body: NULL followed by a CRLF
// of inter-frame whitespace, the finish sequence some brokers expect
// between frames that never carry a body.
func writeBodylessFrame(w *bufio.Writer, command string, headers Headers) error {
	if err := writeFrame(w, command, headers); err != nil {
		return err
	}
	if err := w.WriteByte(0x00); err != nil {
		return newTransportError("write terminator", err)
	}
	if err := w.WriteByte('\r'); err != nil {
		return newTransportError("write inter-frame whitespace", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return newTransportError("write inter-frame whitespace", err)
	}
	return w.Flush()
}

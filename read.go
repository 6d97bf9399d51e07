package stomp

import (
	"bufio"
	"strconv"
	"strings"
)

const readChunkSize = 8192

// frameReader reads one logical STOMP frame at a time from a buffered
// stream. Grounded on go-stomp/stomp/frame.Reader.Read (readLine for
// command/headers, a bounded fill loop keyed off content-length,
// NULL-scan fallback otherwise) and on the teacher's read.go for the
// overall readFrame shape, with two deliberate departures from both:
// header values are escape-decoded on the way in, and the bounded
// content-length read is chunked at a fixed buffer size rather than
// filled in one Read call.
type frameReader struct {
	r *bufio.Reader
}

func newFrameReader(r *bufio.Reader) *frameReader {
	return &frameReader{r: r}
}

// readFrame reads one frame. A blank leading line (bare CR, CRLF, or empty)
// yields a HEARTBEAT response with no headers and no body.
func (fr *frameReader) readFrame() (Response, error) {
	first, err := fr.r.Peek(1)
	if err != nil {
		return Response{}, newTransportError("read line", err)
	}
	if first[0] == '\r' {
		// A lone CR ends the heartbeat line by itself; an LF right after it
		// is swallowed only if already buffered, so an idle stream is not
		// blocked on waiting for one.
		_, _ = fr.r.ReadByte()
		if fr.r.Buffered() > 0 {
			if next, err := fr.r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = fr.r.ReadByte()
			}
		}
		return Response{Kind: cmdHeartbeat}, nil
	}

	line, err := fr.readLine()
	if err != nil {
		return Response{}, err
	}
	if line == "" {
		return Response{Kind: cmdHeartbeat}, nil
	}

	resp := Response{Kind: line, Headers: Headers{}}

	contentLength := -1
	for {
		headerLine, err := fr.readLine()
		if err != nil {
			return resp, err
		}
		if headerLine == "" {
			break
		}
		idx := strings.IndexByte(headerLine, ':')
		if idx < 0 {
			break
		}
		name := headerLine[:idx]
		value := decodeValue(headerLine[idx+1:])
		resp.Headers.Add(name, value)
		if strings.EqualFold(name, "content-length") && contentLength < 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(headerLine[idx+1:])); err == nil {
				contentLength = n
			}
		}
	}

	body, err := fr.readBody(contentLength)
	if err != nil {
		return resp, err
	}
	resp.Body = body
	return resp, nil
}

// readBody does a bounded chunked read when content-length was present,
// otherwise a NULL-scan. Both paths consume the NULL terminator; for a frame
// with no body and no content-length (CONNECTED, RECEIPT, unknown) the
// NULL-scan reads just that lone NULL and returns an empty body. HEARTBEAT
// never reaches here.
func (fr *frameReader) readBody(contentLength int) ([]byte, error) {
	if contentLength >= 0 {
		body := make([]byte, contentLength)
		for read := 0; read < contentLength; {
			end := read + readChunkSize
			if end > contentLength {
				end = contentLength
			}
			n, err := fr.r.Read(body[read:end])
			if err != nil {
				return nil, newTransportError("read body", err)
			}
			read += n
		}
		term, err := fr.r.ReadByte()
		if err != nil {
			return nil, newTransportError("read terminator", err)
		}
		if term != 0x00 {
			return nil, ClientError("expected NULL terminator after content-length body")
		}
		return body, nil
	}

	raw, err := fr.r.ReadBytes(0x00)
	if err != nil {
		return nil, newTransportError("read body", err)
	}
	return raw[:len(raw)-1], nil
}

// readLine reads up to LF, stripping a trailing CR if present, tolerating
// both CRLF and bare-LF line terminators.
func (fr *frameReader) readLine() (string, error) {
	line, err := fr.r.ReadString('\n')
	if err != nil {
		return "", newTransportError("read line", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

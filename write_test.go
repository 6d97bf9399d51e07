package stomp

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWriteBodylessFrameFinishSequence checks the CRLF NULL CRLF "finish"
// sequence for a command with no body.
func TestWriteBodylessFrameFinishSequence(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	headers := Headers{}
	headers.Add("transaction", "t1")
	err := writeBodylessFrame(w, cmdBegin, headers)
	assert.NoError(t, err)

	assert.Equal(t, "BEGIN\r\ntransaction:t1\r\n\r\n\x00\r\n", buf.String())
}

// TestWriteBodyFrameWireBytes checks the exact byte layout of a SEND frame
// with a body.
func TestWriteBodyFrameWireBytes(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	headers := Headers{}
	headers.Add("destination", "/q")
	headers.Add("content-type", "text/plain")

	body := []byte("Hello world!")
	err := writeBodyFrame(w, cmdSend, headers, body)
	assert.NoError(t, err)

	want := "SEND\r\ndestination:/q\r\ncontent-type:text/plain\r\ncontent-length:12\r\n\r\nHello world!\x00"
	assert.Equal(t, want, buf.String())
}

// TestWriteBodyFrameContentLengthMatchesBody checks that the emitted
// content-length header matches the body's byte length.
func TestWriteBodyFrameContentLengthMatchesBody(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	body := []byte("abcdefg")
	err := writeBodyFrame(w, cmdSend, Headers{}, body)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "content-length:7")
}

func TestWriteBodyFrameEscapesHeaderValues(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	headers := Headers{}
	headers.Add("x-note", "a:b\nc")
	err := writeBodyFrame(w, cmdSend, headers, nil)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "x-note:a\\cb\\nc")
}

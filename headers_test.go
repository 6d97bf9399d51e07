package stomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadersGetCaseInsensitiveFirstOccurrence(t *testing.T) {
	h := Headers{}
	h.Add("Content-Type", "text/plain")
	h.Add("content-type", "application/json")

	v, ok := h.Get("CONTENT-TYPE")
	assert.True(t, ok)
	assert.Equal(t, "text/plain", v)
}

func TestHeadersEntriesPreserveOrderAndCase(t *testing.T) {
	h := Headers{}
	h.Add("Destination", "/q")
	h.Add("Content-Length", "5")

	entries := h.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "Destination", entries[0][0])
	assert.Equal(t, "Content-Length", entries[1][0])
}

func TestHeadersSetReplacesFirstMatch(t *testing.T) {
	h := Headers{}
	h.Add("id", "1")
	h.Set("id", "2")
	assert.Equal(t, 1, h.Len())

	v, ok := h.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestValidAckMode(t *testing.T) {
	for _, m := range []AckMode{AckAuto, AckClient, AckClientIndividual} {
		assert.True(t, validAckMode(m), "expected %q to be valid", m)
	}
	assert.False(t, validAckMode(AckMode("bogus")))
}

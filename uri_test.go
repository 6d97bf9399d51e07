package stomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseClientOptsVhostAndHeartbeat checks vhost %2F-decoding and
// heartbeat query parsing together.
func TestParseClientOptsVhostAndHeartbeat(t *testing.T) {
	opts, err := ParseClientOpts("stomp://u:p@h/%2Fvhost?heartbeat=5")
	assert.NoError(t, err)
	assert.Equal(t, "/vhost", opts.Vhost)
	assert.Equal(t, 5, opts.Heartbeat)
	assert.Equal(t, defaultPortPlain, opts.Port)
	assert.Equal(t, "u", opts.User)
	assert.Equal(t, "p", opts.PassCode)
}

func TestParseClientOptsSSLDefaultPort(t *testing.T) {
	opts, err := ParseClientOpts("stomp+ssl://h")
	assert.NoError(t, err)
	assert.True(t, opts.SSL)
	assert.Equal(t, defaultPortSSL, opts.Port)
}

func TestParseClientOptsBadScheme(t *testing.T) {
	_, err := ParseClientOpts("amqp://h")
	assert.IsType(t, BadSchemeError(""), err)
}

func TestParseClientOptsUnknownQueryIgnored(t *testing.T) {
	opts, err := ParseClientOpts("stomp://h?bogus=1&heartbeat=10")
	assert.NoError(t, err)
	assert.Equal(t, 10, opts.Heartbeat)
}

func TestDecodeVhostCollapsesSlashes(t *testing.T) {
	assert.Equal(t, "/a/b", decodeVhost("//a///b"))
}

package stomp

import "github.com/google/uuid"

// Option mutates the outbound headers of a single command call. Grounded
// on go-stomp/stomp/v3's ConnOpt functional options (conn_options.go),
// adapted from package-level vars attached to a long-lived Conn builder to
// plain variadic arguments, since this core's commands are one-shot calls
// rather than a multi-step connection build.
type Option func(h *Headers)

// WithHeader sets an additional caller-supplied header on the frame. If
// the command already sets this header (e.g. "destination"), WithHeader
// overrides it.
func WithHeader(key, value string) Option {
	return func(h *Headers) { h.Set(key, value) }
}

// WithReceipt requests a RECEIPT frame for this command, tagged with id.
func WithReceipt(id string) Option {
	return func(h *Headers) { h.Set("receipt", id) }
}

// WithAutoReceipt is WithReceipt with a generated id, returned so the
// caller can correlate the eventual RECEIPT frame's "receipt-id" header.
func WithAutoReceipt() (Option, string) {
	id := uuid.NewString()
	return WithReceipt(id), id
}

func applyOptions(h Headers, opts []Option) Headers {
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

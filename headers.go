package stomp

import "strings"

// Headers is an ordered list of STOMP header name/value pairs. Lookup by
// Get is case-insensitive and returns the first occurrence, but iteration
// via Entries preserves the original case and order, matching the frame
// representation used throughout the STOMP wire format.
//
// The storage mirrors go-stomp's frame.Header: a flat slice of alternating
// keys and values rather than a map, so that header order survives a
// parse/re-encode round-trip (spec property 7).
type Headers struct {
	slice []string
}

// NewHeaders builds a Headers from alternating key, value arguments.
func NewHeaders(kv ...string) Headers {
	h := Headers{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Add(kv[i], kv[i+1])
	}
	return h
}

// Add appends a header entry, even if a header with the same name already
// exists.
func (h *Headers) Add(key, value string) {
	h.slice = append(h.slice, key, value)
}

// Set replaces the value of the first entry matching key (case-insensitive)
// or appends a new entry if none exists.
func (h *Headers) Set(key, value string) {
	if i, ok := h.index(key); ok {
		h.slice[i+1] = value
		return
	}
	h.Add(key, value)
}

// Get returns the value of the first entry matching key, case-insensitive,
// and whether it was found.
func (h *Headers) Get(key string) (string, bool) {
	if i, ok := h.index(key); ok {
		return h.slice[i+1], true
	}
	return "", false
}

// GetDefault is Get without the presence bool, returning "" when absent.
func (h *Headers) GetDefault(key string) string {
	v, _ := h.Get(key)
	return v
}

// Len returns the number of header entries.
func (h *Headers) Len() int {
	return len(h.slice) / 2
}

// Entries returns the header pairs in wire order. The returned slice shares
// no storage with the Headers and is safe to mutate.
func (h *Headers) Entries() [][2]string {
	out := make([][2]string, 0, h.Len())
	for i := 0; i < len(h.slice); i += 2 {
		out = append(out, [2]string{h.slice[i], h.slice[i+1]})
	}
	return out
}

func (h *Headers) index(key string) (int, bool) {
	for i := 0; i < len(h.slice); i += 2 {
		if strings.EqualFold(h.slice[i], key) {
			return i, true
		}
	}
	return -1, false
}

// AckMode names the three STOMP 1.2 subscription acknowledgement modes.
type AckMode string

const (
	AckAuto             AckMode = "auto"
	AckClient           AckMode = "client"
	AckClientIndividual AckMode = "client-individual"
)

func validAckMode(mode AckMode) bool {
	switch mode {
	case AckAuto, AckClient, AckClientIndividual:
		return true
	default:
		return false
	}
}

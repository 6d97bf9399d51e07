package stomp

import "strings"

// encodeValue and decodeValue implement the STOMP 1.2 header value escape
// rules: CR, LF, backslash and colon are escaped on the wire; never the
// header name. strings.Replacer performs the substitution in a single pass
// over the input using all four pairs simultaneously, so there is no risk
// of double-escaping a backslash introduced by an earlier substitution, the
// way a naive ordered sequence of replacements would.
var (
	valueEncoder = strings.NewReplacer(
		"\r", "\\r",
		"\n", "\\n",
		"\\", "\\\\",
		":", "\\c",
	)
	valueDecoder = strings.NewReplacer(
		"\\r", "\r",
		"\\n", "\n",
		"\\c", ":",
		"\\\\", "\\",
	)
)

func encodeValue(s string) string {
	return valueEncoder.Replace(s)
}

func decodeValue(s string) string {
	return valueDecoder.Replace(s)
}

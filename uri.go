package stomp

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPortPlain = 61613
	defaultPortSSL   = 61614
	defaultReadMS    = 500
)

// ClientOpts holds the connection parameters for a Client, either built by
// hand or parsed from a connection-string URI via ParseClientOpts.
//
// Mirrors the teacher's ClientOpts (stompy's client.go), extended with a
// few connection-string fields: TLS is signaled to the caller via SSL but
// never acted on here -- wrapping the stream in TLS is the caller's job,
// same as dialing.
type ClientOpts struct {
	Host        string
	Port        int
	SSL         bool
	Vhost       string
	User        string
	PassCode    string
	ReadTimeout int // milliseconds
	Heartbeat   int // seconds, 0 means disabled
}

// ParseClientOpts parses a stomp:// or stomp+ssl:// connection string:
// scheme selects the default port and the SSL hint, userinfo supplies
// credentials, the path (minus one leading slash) is the vhost with
// %2f/%2F decoded to '/' and any resulting "//" collapsed to "/", and the
// only recognized query parameter is heartbeat=<seconds>. Unknown or
// malformed query parameters are ignored silently.
func ParseClientOpts(uri string) (ClientOpts, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return ClientOpts{}, BadSchemeError(err.Error())
	}

	opts := ClientOpts{ReadTimeout: defaultReadMS}

	switch u.Scheme {
	case "stomp":
		opts.Port = defaultPortPlain
	case "stomp+ssl":
		opts.SSL = true
		opts.Port = defaultPortSSL
	default:
		return ClientOpts{}, BadSchemeError(u.Scheme)
	}

	opts.Host = u.Hostname()
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			opts.Port = n
		}
	}

	if u.User != nil {
		opts.User = u.User.Username()
		opts.PassCode, _ = u.User.Password()
	}

	opts.Vhost = decodeVhost(u.EscapedPath())

	if q := u.RawQuery; q != "" {
		for _, pair := range strings.Split(q, "&") {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) != 2 {
				continue
			}
			if kv[0] != "heartbeat" {
				continue
			}
			if n, err := strconv.Atoi(kv[1]); err == nil {
				opts.Heartbeat = n
			}
		}
	}

	return opts, nil
}

// decodeVhost takes the still-escaped request path (so a literal "%2F" in
// the URI survives to this point rather than having already become a "/"
// during URL parsing), strips a single leading slash, decodes %2f/%2F to
// '/' and collapses any resulting run of slashes down to one. A vhost name
// containing its own "/" has to be percent-encoded on the wire for exactly
// this reason (stomp://u:p@h/%2Fvhost?heartbeat=5 -> vhost "/vhost").
func decodeVhost(escapedPath string) string {
	p := strings.TrimPrefix(escapedPath, "/")
	p = strings.ReplaceAll(p, "%2f", "/")
	p = strings.ReplaceAll(p, "%2F", "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

func (o ClientOpts) hostAndPort() string {
	return o.Host + ":" + strconv.Itoa(o.Port)
}

package shoutrrr

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	schemeRe = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*)://`)
	portRe   = regexp.MustCompile(`:(\d+)$`)
)

// URL is a parsed service URL descriptor.
type URL struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     string
	Path     string
	Query    map[string]string
}

// HostPort returns Host with ":Port" appended when a port is set.
func (u URL) HostPort() string {
	if u.Port == "" {
		return u.Host
	}
	return u.Host + ":" + u.Port
}

// Parse splits raw into its components. User, password and query are
// percent-decoded; host and path are kept raw so adapters can paste them
// into outbound URLs unchanged. It reports false when raw has no scheme or
// when a decoded component carries a malformed percent-escape.
func Parse(raw string) (URL, bool) {
	m := schemeRe.FindStringSubmatch(raw)
	if m == nil {
		return URL{}, false
	}

	u := URL{
		Scheme: strings.ToLower(m[1]),
		Query:  map[string]string{},
	}
	rest := raw[len(m[0]):]
	d := decoder{}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		qs := rest[i+1:]
		rest = rest[:i]
		for _, pair := range strings.Split(qs, "&") {
			if pair == "" {
				continue
			}
			key, value, _ := strings.Cut(pair, "=")
			u.Query[d.decode(key)] = d.decode(value)
		}
	}

	authority := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority = rest[:i]
	}
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfo := rest[:at]
		rest = rest[at+1:]
		user, password, _ := strings.Cut(userinfo, ":")
		u.User = d.decode(user)
		u.Password = d.decode(password)
	}

	host := rest
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		host = rest[:i]
		u.Path = rest[i:]
	}
	if pm := portRe.FindStringSubmatch(host); pm != nil {
		u.Port = pm[1]
		host = host[:len(host)-len(pm[0])]
	}
	u.Host = host

	if d.failed {
		return URL{}, false
	}
	return u, true
}

// SplitURLs splits a whitespace separated list of URLs.
func SplitURLs(blob string) []string {
	return strings.Fields(blob)
}

// decoder percent-decodes components and remembers the first failure.
type decoder struct {
	failed bool
}

func (d *decoder) decode(s string) string {
	if d.failed || !strings.Contains(s, "%") {
		return s
	}
	out, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(out) {
		d.failed = true
		return ""
	}
	return out
}

package gateway

import (
	"regexp"
	"strings"
)

var (
	absoluteURL     = regexp.MustCompile(`(?i)^https?://`)
	repeatedSlashes = regexp.MustCompile(`/{2,}`)
)

// prefixRewrite replaces a leading path segment sequence. It only matches on a
// segment boundary, so "/v1" rewrites "/v1/hotels" but not "/v10".
type prefixRewrite struct {
	from string
	to   string
}

var prefixRewrites = []prefixRewrite{
	{from: "/v1", to: "/api/v1"},
	{from: "/api/api", to: "/api"},
	{from: "/api/admin-api", to: "/admin-api"},
}

func (r prefixRewrite) apply(path string) string {
	rest, ok := strings.CutPrefix(path, r.from)
	if !ok {
		return path
	}
	if rest != "" && rest[0] != '/' {
		return path
	}
	return r.to + rest
}

// IsAbsoluteURL reports whether path is a full http(s) URL.
func IsAbsoluteURL(path string) bool {
	return absoluteURL.MatchString(path)
}

// Normalize maps a caller-supplied path to its canonical API form.
//
// Absolute URLs and the empty string are returned untouched. Relative paths get
// a leading slash, repeated slashes collapse, and the legacy /v1, doubled /api
// and misplaced /api/admin-api prefixes are rewritten. The rewrites run to a
// fixed point so Normalize is idempotent.
func Normalize(path string) string {
	if path == "" || IsAbsoluteURL(path) {
		return path
	}

	p, query, hasQuery := strings.Cut(path, "?")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = repeatedSlashes.ReplaceAllString(p, "/")

	for {
		next := p
		for _, rw := range prefixRewrites {
			next = rw.apply(next)
		}
		if next == p {
			break
		}
		p = next
	}

	if hasQuery {
		return p + "?" + query
	}
	return p
}

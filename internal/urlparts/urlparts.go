// Package urlparts splits a raw URL into positional path segments and a
// decoded query-parameter map.
package urlparts

import (
	"net/url"
	"strings"
)

// Parts holds the decomposed form of a URL
type Parts struct {
	PathSegments []string          `json:"path_segments"`
	QueryParams  map[string]string `json:"query_params"`
}

// Decompose parses raw and never fails. Input that net/url rejects, such as
// a malformed percent escape, is split on its raw text instead.
func Decompose(raw string) Parts {
	parts := Parts{QueryParams: map[string]string{}}

	var p, query string
	if u, err := url.Parse(raw); err == nil {
		p = u.EscapedPath()
		// A bare authority has the root path, same as a browser location
		if p == "" && u.Host != "" {
			p = "/"
		}
		query = u.RawQuery
	} else {
		p, query = splitRaw(raw)
	}

	if p != "" {
		parts.PathSegments = strings.Split(p, "/")
	}

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		parts.QueryParams[unescape(key)] = unescape(value)
	}

	return parts
}

// splitRaw extracts the path and query text without validating escapes.
// An authority with no path yields no path at all.
func splitRaw(raw string) (path, query string) {
	raw, _, _ = strings.Cut(raw, "#")
	raw, query, _ = strings.Cut(raw, "?")

	if _, rest, ok := strings.Cut(raw, "://"); ok {
		i := strings.IndexByte(rest, '/')
		if i < 0 {
			return "", query
		}
		return rest[i:], query
	}
	return raw, query
}

// Segment returns the i-th path segment, if present
func (p Parts) Segment(i int) (string, bool) {
	if i < 0 || i >= len(p.PathSegments) {
		return "", false
	}
	return p.PathSegments[i], true
}

// Param returns the decoded value of a query parameter
func (p Parts) Param(key string) (string, bool) {
	v, ok := p.QueryParams[key]
	return v, ok
}

// unescape percent-decodes s without treating '+' as a space.
// Malformed escapes leave s untouched.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

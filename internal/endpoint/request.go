// Package endpoint executes request descriptors built by the service
// packages and decodes the {"data": ...} envelope both services share.
package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Request fully describes one HTTP call before it is executed.
// Service packages build a fresh Request per call; nothing caches them.
type Request struct {
	Method  string
	BaseURL string
	Path    string
	Query   url.Values
	Header  http.Header
	Body    []byte
}

// URL joins the base URL, path and query.
func (r *Request) URL() (string, error) {
	base := strings.TrimRight(r.BaseURL, "/")
	u, err := url.Parse(base + r.Path)
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}
	return u.String(), nil
}

// JoinPath builds a request path from segments, escaping each one.
func JoinPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

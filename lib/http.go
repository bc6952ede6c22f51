package lib

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HttpClient is satisfied by *http.Client. Service clients depend on this so that tests can mock responses.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHttpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// UrlWithQuery appends the encoded query parameters to base, keeping any query base already carries.
func UrlWithQuery(base string, params url.Values) string {
	if len(params) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}

// JoinUrl joins a base url and path segments with single slashes. Segments are path-escaped.
func JoinUrl(base string, segments ...string) string {
	u := strings.TrimRight(base, "/")
	for _, s := range segments {
		u += "/" + url.PathEscape(strings.Trim(s, "/"))
	}
	return u
}

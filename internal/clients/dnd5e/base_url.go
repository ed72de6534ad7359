package dnd5e

import (
	"net/http"
	"net/url"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// publicAPIPath is the path prefix every request of the api client starts with
const publicAPIPath = "/api/"

// baseURLTransport sends the api client's requests to another host
type baseURLTransport struct {
	base *url.URL
	next http.RoundTripper
}

func withBaseURL(httpClient *http.Client, baseURL string) (*http.Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, dnderr.InvalidConfigurationf("invalid D&D 5e API URL %q", baseURL).
			WithMeta("env", "DND5E_API_URL")
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	rewritten := &http.Client{}
	if httpClient != nil {
		*rewritten = *httpClient
	}
	next := rewritten.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	rewritten.Transport = &baseURLTransport{base: base, next: next}
	return rewritten, nil
}

func (t *baseURLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.Host = t.base.Host
	out.URL.Path = t.base.Path + strings.TrimPrefix(req.URL.Path, publicAPIPath)
	return t.next.RoundTrip(out)
}

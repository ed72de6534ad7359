package dnd5e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

type recordingTransport struct {
	last *http.Request
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.last = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

func TestWithBaseURL_RewritesRequests(t *testing.T) {
	recorder := &recordingTransport{}
	client, err := withBaseURL(&http.Client{Transport: recorder}, "http://localhost:3000/mirror")
	require.NoError(t, err)

	resp, err := client.Get("https://www.dnd5eapi.co/api/classes/wizard")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotNil(t, recorder.last)
	assert.Equal(t, "http://localhost:3000/mirror/classes/wizard", recorder.last.URL.String())
}

func TestWithBaseURL_Invalid(t *testing.T) {
	_, err := withBaseURL(nil, "not a url")
	assert.True(t, dnderr.IsInvalidConfiguration(err))
}

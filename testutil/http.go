package testutil

import (
	"net/http"
	"testing"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeader(t *testing.T, header http.Header, key, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, header.Get(key), "Header %s mismatch", key)
}

func AssertNoBody(t *testing.T, envelope *httpclient.RequestEnvelope) {
	t.Helper()
	require.NotNil(t, envelope, "No request was dispatched")
	assert.Nil(t, envelope.Body, "Request should carry no body")
}

func AssertJSONBody(t *testing.T, body []byte, expectedJSON string) {
	t.Helper()
	require.NotNil(t, body, "Request should carry a body")
	assert.JSONEq(t, expectedJSON, string(body), "Request body mismatch")
}

func AssertEnvelope[T any](t *testing.T, resp *httpclient.Response[T], success bool, status int) {
	t.Helper()
	require.NotNil(t, resp, "Response envelope should not be nil")
	assert.Equal(t, success, resp.Success, "Response success mismatch")
	assert.Equal(t, status, resp.Status, "Response status mismatch")
}

package restyfetch_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/andyle182810/gfetch/httpclient/restyfetch"
	"github.com/andyle182810/gfetch/testutil"
	"github.com/stretchr/testify/require"
)

type article struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func newClient(t *testing.T, baseURL string, redirect httpclient.RedirectPolicy) *httpclient.Client {
	t.Helper()

	client, err := httpclient.New(
		httpclient.Config{ //nolint:exhaustruct
			BaseURL:  baseURL,
			Token:    "resty-token",
			Redirect: redirect,
		},
		httpclient.WithFetcher(restyfetch.New()),
	)
	require.NoError(t, err)

	return client
}

func newRedirectServer(t *testing.T) *testutil.RecordingServer {
	t.Helper()

	return testutil.NewRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			w.Header().Set("Location", "/new")
			testutil.WriteJSON(w, http.StatusMovedPermanently, testutil.Payload("/new", false))

			return
		}

		testutil.WriteJSON(w, http.StatusOK, testutil.Payload("here", true))
	})
}

func TestFetcher_PostSendsHeadersAndStrippedBody(t *testing.T) {
	t.Parallel()

	server := testutil.NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteJSON(w, http.StatusCreated, testutil.Payload(article{ID: 11, Title: "Hello"}, true))
	})

	client := newClient(t, server.URL, "")

	resp, err := httpclient.PostJSON[article](t.Context(), client, "articles", article{ID: 99, Title: "Hello"})

	require.NoError(t, err)
	testutil.AssertEnvelope(t, resp, true, http.StatusCreated)
	require.Equal(t, "Created", resp.StatusText)
	require.Equal(t, article{ID: 11, Title: "Hello"}, resp.Data.Data)

	last := server.Last()
	require.Equal(t, http.MethodPost, last.Method)
	require.Equal(t, "/articles", last.Path)
	testutil.AssertHeader(t, last.Header, "Authorization", "Bearer resty-token")
	testutil.AssertHeader(t, last.Header, "Accept", "application/json")
	testutil.AssertHeader(t, last.Header, "Content-Type", "application/json; charset=UTF-8")
	require.JSONEq(t, `{"title":"Hello"}`, string(last.Body))
}

func TestFetcher_GetSendsNoBody(t *testing.T) {
	t.Parallel()

	server := testutil.NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, testutil.Payload([]article{}, true))
	})

	client := newClient(t, server.URL, "")

	resp, err := client.Get(t.Context(), "/articles")

	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Empty(t, server.Last().Body)
}

func TestFetcher_NonSuccessStatusIsEnvelope(t *testing.T) {
	t.Parallel()

	server := testutil.NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteJSON(w, http.StatusUnprocessableEntity,
			testutil.Payload(nil, false, map[string]any{"code": 422, "message": "title is required"}))
	})

	client := newClient(t, server.URL, "")

	resp, err := client.Patch(t.Context(), "/articles/1", map[string]string{"title": ""})

	require.NoError(t, err)
	testutil.AssertEnvelope(t, resp, false, http.StatusUnprocessableEntity)
	require.Equal(t, "Unprocessable Entity", resp.StatusText)
	require.Equal(t, 422, resp.Data.Errors[0].Code)
	require.JSONEq(t, `{"title":""}`, string(server.Last().Body))
}

func TestFetcher_RedirectPolicies(t *testing.T) {
	t.Parallel()

	t.Run("follow", func(t *testing.T) {
		t.Parallel()

		server := newRedirectServer(t)
		resp, err := newClient(t, server.URL, httpclient.RedirectFollow).Get(t.Context(), "/old")

		require.NoError(t, err)
		testutil.AssertEnvelope(t, resp, true, http.StatusOK)
		require.Len(t, server.Requests(), 2)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		server := newRedirectServer(t)
		resp, err := newClient(t, server.URL, httpclient.RedirectError).Get(t.Context(), "/old")

		require.Nil(t, resp)
		require.ErrorIs(t, err, httpclient.ErrRedirectBlocked)
		require.Len(t, server.Requests(), 1)
	})

	t.Run("manual", func(t *testing.T) {
		t.Parallel()

		server := newRedirectServer(t)
		resp, err := newClient(t, server.URL, httpclient.RedirectManual).Get(t.Context(), "/old")

		require.NoError(t, err)
		testutil.AssertEnvelope(t, resp, false, http.StatusMovedPermanently)
		require.NotNil(t, resp.Data)
		require.JSONEq(t, `"/new"`, string(resp.Data.Data))
		require.Len(t, server.Requests(), 1)
	})
}

func TestFetcher_TransportFailurePropagates(t *testing.T) {
	t.Parallel()

	server := testutil.NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	baseURL := server.URL
	server.Close()

	resp, err := newClient(t, baseURL, "").Delete(t.Context(), "/articles/1")

	require.Nil(t, resp)
	require.Error(t, err)
	require.NotErrorIs(t, err, httpclient.ErrDecodeResponse)
}

func TestWithTransport_UsesGivenRoundTripper(t *testing.T) {
	t.Parallel()

	server := testutil.NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, testutil.Payload("ok", true))
	})

	transport := &countingTransport{next: http.DefaultTransport, calls: 0}

	client, err := httpclient.New(
		httpclient.Config{BaseURL: server.URL}, //nolint:exhaustruct
		httpclient.WithFetcher(restyfetch.New(restyfetch.WithTransport(transport))),
	)
	require.NoError(t, err)

	_, err = client.Get(t.Context(), "/ping")

	require.NoError(t, err)
	require.Equal(t, 1, transport.calls)
}

type countingTransport struct {
	next  http.RoundTripper
	calls int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++

	return c.next.RoundTrip(req)
}

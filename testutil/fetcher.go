package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/stretchr/testify/require"
)

// StubFetcher answers every request with the same canned response (or error)
// and records what it was asked to send.
type StubFetcher struct {
	mu        sync.Mutex
	response  *httpclient.RawResponse
	err       error
	envelopes []*httpclient.RequestEnvelope
}

var _ httpclient.Fetcher = (*StubFetcher)(nil)

func NewStubFetcher(response *httpclient.RawResponse) *StubFetcher {
	return &StubFetcher{
		mu:        sync.Mutex{},
		response:  response,
		err:       nil,
		envelopes: nil,
	}
}

func NewFailingFetcher(err error) *StubFetcher {
	return &StubFetcher{
		mu:        sync.Mutex{},
		response:  nil,
		err:       err,
		envelopes: nil,
	}
}

func (s *StubFetcher) Fetch(_ context.Context, envelope *httpclient.RequestEnvelope) (*httpclient.RawResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.envelopes = append(s.envelopes, envelope)

	if s.err != nil {
		return nil, s.err
	}

	return &httpclient.RawResponse{
		StatusCode: s.response.StatusCode,
		Status:     s.response.Status,
		Header:     s.response.Header.Clone(),
		Body:       bytes.Clone(s.response.Body),
	}, nil
}

func (s *StubFetcher) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.envelopes)
}

func (s *StubFetcher) Last() *httpclient.RequestEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.envelopes) == 0 {
		return nil
	}

	return s.envelopes[len(s.envelopes)-1]
}

func JSONResponse(t *testing.T, statusCode int, payload any) *httpclient.RawResponse {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err, "Failed to marshal stub payload")

	return RawResponse(statusCode, string(body))
}

func RawResponse(statusCode int, body string) *httpclient.RawResponse {
	return &httpclient.RawResponse{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

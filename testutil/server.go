package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// RecordingServer is an httptest server that keeps a copy of every request
// before handing it to the handler.
type RecordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewRecordingServer(t *testing.T, handler http.HandlerFunc) *RecordingServer {
	t.Helper()

	srv := &RecordingServer{
		Server:   nil,
		mu:       sync.Mutex{},
		requests: nil,
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		srv.mu.Lock()
		srv.requests = append(srv.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		srv.mu.Unlock()

		handler(w, r)
	}))

	t.Cleanup(srv.Close)

	return srv
}

func (s *RecordingServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *RecordingServer) Last() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return RecordedRequest{} //nolint:exhaustruct
	}

	return s.requests[len(s.requests)-1]
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// Payload builds a body in the {data, success, errors} shape.
func Payload(data any, success bool, errs ...map[string]any) map[string]any {
	if errs == nil {
		errs = []map[string]any{}
	}

	return map[string]any{
		"data":    data,
		"success": success,
		"errors":  errs,
	}
}

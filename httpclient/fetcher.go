package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Fetcher performs the network exchange for one request. Errors it returns
// reach the caller unchanged.
type Fetcher interface {
	Fetch(ctx context.Context, req *RequestEnvelope) (*RawResponse, error)
}

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	_ Doer    = (*http.Client)(nil)
	_ Fetcher = (*HTTPFetcher)(nil)
)

// RequestEnvelope is the fully built outbound request. Body is nil when no
// body is to be sent.
type RequestEnvelope struct {
	Method   string
	URL      string
	Header   http.Header
	Body     []byte
	Redirect RedirectPolicy
}

type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// CheckRedirect implements the policy as an http.Client redirect hook.
func (p RedirectPolicy) CheckRedirect(_ *http.Request, _ []*http.Request) error {
	switch p {
	case RedirectError:
		return ErrRedirectBlocked
	case RedirectManual:
		return http.ErrUseLastResponse
	case RedirectFollow:
		return nil
	default:
		return nil
	}
}

// HTTPFetcher sends envelopes through a Doer, *http.Client by default.
// The redirect policy is only enforced when the Doer is an *http.Client.
type HTTPFetcher struct {
	doer Doer
}

func NewHTTPFetcher(doer Doer) *HTTPFetcher {
	if doer == nil {
		doer = &http.Client{} //nolint:exhaustruct
	}

	return &HTTPFetcher{doer: doer}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, envelope *RequestEnvelope) (*RawResponse, error) {
	var body io.Reader
	if envelope.Body != nil {
		body = bytes.NewReader(envelope.Body)
	}

	req, err := http.NewRequestWithContext(ctx, envelope.Method, envelope.URL, body)
	if err != nil {
		return nil, err
	}

	req.Header = envelope.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	resp, err := f.doerFor(envelope.Redirect).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (f *HTTPFetcher) doerFor(policy RedirectPolicy) Doer {
	httpClient, ok := f.doer.(*http.Client)
	if !ok || policy == "" || policy == RedirectFollow {
		return f.doer
	}

	scoped := *httpClient
	scoped.CheckRedirect = policy.CheckRedirect

	return &scoped
}

// Package restyfetch sends httpclient envelopes through go-resty.
package restyfetch

import (
	"context"
	"net/http"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/go-resty/resty/v2"
)

// Fetcher keeps one resty client per redirect policy. All of them share the
// same transport, so connections are pooled across policies.
type Fetcher struct {
	transport http.RoundTripper
	clients   map[httpclient.RedirectPolicy]*resty.Client
}

var _ httpclient.Fetcher = (*Fetcher)(nil)

type Option func(*Fetcher)

func WithTransport(transport http.RoundTripper) Option {
	return func(f *Fetcher) {
		if transport != nil {
			f.transport = transport
		}
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		transport: http.DefaultTransport,
		clients:   nil,
	}

	for _, opt := range opts {
		opt(f)
	}

	f.clients = map[httpclient.RedirectPolicy]*resty.Client{
		httpclient.RedirectFollow: newRestyClient(f.transport, httpclient.RedirectFollow),
		httpclient.RedirectError:  newRestyClient(f.transport, httpclient.RedirectError),
		httpclient.RedirectManual: newRestyClient(f.transport, httpclient.RedirectManual),
	}

	return f
}

func newRestyClient(transport http.RoundTripper, policy httpclient.RedirectPolicy) *resty.Client {
	client := resty.NewWithClient(&http.Client{ //nolint:exhaustruct
		Transport: transport,
	})

	if policy != httpclient.RedirectFollow {
		client.SetRedirectPolicy(resty.RedirectPolicyFunc(policy.CheckRedirect))
	}

	return client
}

func (f *Fetcher) client(policy httpclient.RedirectPolicy) *resty.Client {
	if client, ok := f.clients[policy]; ok {
		return client
	}

	return f.clients[httpclient.RedirectFollow]
}

func (f *Fetcher) Fetch(ctx context.Context, envelope *httpclient.RequestEnvelope) (*httpclient.RawResponse, error) {
	req := f.client(envelope.Redirect).R().SetContext(ctx)

	for key, values := range envelope.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if envelope.Body != nil {
		req.SetBody(envelope.Body)
	}

	resp, err := req.Execute(envelope.Method, envelope.URL)
	if err != nil {
		return nil, err
	}

	return &httpclient.RawResponse{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

package httpclient

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// API is the verb surface of Client.
type API interface {
	Get(ctx context.Context, path string, opts ...RequestOption) (*Response[json.RawMessage], error)
	Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response[json.RawMessage], error)
	Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response[json.RawMessage], error)
	Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response[json.RawMessage], error)
	Delete(ctx context.Context, path string, opts ...RequestOption) (*Response[json.RawMessage], error)
}

var _ API = (*Client)(nil)

// Client is safe for concurrent use; nothing it holds changes after New.
type Client struct {
	baseURL         string
	token           string
	headers         map[string]string
	redirect        RedirectPolicy
	fetcher         Fetcher
	logger          zerolog.Logger
	requestIDHeader bool
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:         cfg.BaseURL,
		token:           cfg.Token,
		headers:         maps.Clone(cfg.Headers),
		redirect:        cfg.redirectPolicy(),
		fetcher:         NewHTTPFetcher(nil),
		logger:          zerolog.Nop(),
		requestIDHeader: false,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Get(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, http.MethodGet, path, nil, opts)
}

// Post sends body without its top-level "id" member.
func (c *Client) Post(
	ctx context.Context,
	path string,
	body any,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, http.MethodPost, path, body, opts)
}

func (c *Client) Put(
	ctx context.Context,
	path string,
	body any,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, http.MethodPut, path, body, opts)
}

func (c *Client) Patch(
	ctx context.Context,
	path string,
	body any,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, http.MethodPatch, path, body, opts)
}

func (c *Client) Delete(
	ctx context.Context,
	path string,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, http.MethodDelete, path, nil, opts)
}

// Do runs an arbitrary method through the same pipeline. A body given with
// GET is dropped without notice.
func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (*Response[json.RawMessage], error) {
	return request[json.RawMessage](ctx, c, method, path, body, opts)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Redirect() RedirectPolicy {
	return c.redirect
}

func request[T any](
	ctx context.Context,
	c *Client,
	method string,
	path string,
	body any,
	opts []RequestOption,
) (*Response[T], error) {
	envelope, err := c.buildEnvelope(method, path, body, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	c.logger.Debug().
		Str("method", envelope.Method).
		Str("url", envelope.URL).
		Bool("has_body", envelope.Body != nil).
		Msg("Dispatching request")

	raw, err := c.fetcher.Fetch(ctx, envelope)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", envelope.Method).
			Str("url", envelope.URL).
			Msg("The request has failed before a response was received")

		return nil, err
	}

	data, err := decodePayload[T](raw.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", envelope.Method).
		Str("url", envelope.URL).
		Int("status", raw.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("The request has completed")

	return &Response[T]{
		Success:    isSuccess(raw.StatusCode),
		Status:     raw.StatusCode,
		StatusText: reasonPhrase(raw.StatusCode, raw.Status),
		Data:       data,
	}, nil
}

func (c *Client) buildEnvelope(
	method string,
	path string,
	body any,
	opts []RequestOption,
) (*RequestEnvelope, error) {
	cfg := &requestConfig{headers: nil}

	for _, opt := range opts {
		opt(cfg)
	}

	payload, err := encodeBody(method, body)
	if err != nil {
		return nil, err
	}

	var requestID map[string]string
	if c.requestIDHeader {
		requestID = map[string]string{HeaderXRequestID: uuid.NewString()}
	}

	return &RequestEnvelope{
		Method:   method,
		URL:      c.buildURL(path),
		Header:   MergeHeaders(defaultHeaders(c.token), c.headers, requestID, cfg.headers),
		Body:     payload,
		Redirect: c.redirect,
	}, nil
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

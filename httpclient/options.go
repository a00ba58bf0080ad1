package httpclient

import (
	"maps"

	"github.com/rs/zerolog"
)

const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	ContentTypeJSON     = "application/json"
	ContentTypeJSONUTF8 = "application/json; charset=UTF-8"
)

type Option func(*Client)

// WithFetcher replaces the network primitive. A nil fetcher is ignored.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *Client) {
		if fetcher != nil {
			c.fetcher = fetcher
		}
	}
}

func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.fetcher = NewHTTPFetcher(doer)
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestIDHeader tags every request with a fresh X-Request-ID unless
// the caller supplies one.
func WithRequestIDHeader() Option {
	return func(c *Client) {
		c.requestIDHeader = true
	}
}

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers map[string]string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string, len(headers))
		}

		maps.Copy(rc.headers, headers)
	}
}

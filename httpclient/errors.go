package httpclient

import (
	"errors"
)

var (
	ErrInvalidConfig   = errors.New("httpclient: invalid config")
	ErrDecodeResponse  = errors.New("httpclient: failed to decode response")
	ErrEncodeBody      = errors.New("httpclient: failed to encode request body")
	ErrRedirectBlocked = errors.New("httpclient: redirect blocked by policy")
)

package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Response is the envelope every verb returns. Success mirrors the 2xx range;
// a non-2xx status is reported here, never as an error.
type Response[T any] struct {
	Success    bool            `json:"success"`
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       *BasePayload[T] `json:"data"`
}

// BasePayload is the body shape servers are expected to send. It is decoded
// as is; nothing checks that the server honored it.
type BasePayload[T any] struct {
	Data    T           `json:"data"`
	Success bool        `json:"success"`
	Errors  []ErrorItem `json:"errors"`
}

type ErrorItem struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// reasonPhrase extracts "Not Found" from "404 Not Found". A status without
// a reason, as HTTP/2 responses have, yields "".
func reasonPhrase(statusCode int, status string) string {
	code := strconv.Itoa(statusCode)

	if status == code {
		return ""
	}

	if text, ok := strings.CutPrefix(status, code+" "); ok {
		return text
	}

	return status
}

// decodePayload rejects a body that is not JSON, an empty one included.
// The literal null decodes to a nil payload.
func decodePayload[T any](body []byte) (*BasePayload[T], error) {
	var payload *BasePayload[T]
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return payload, nil
}

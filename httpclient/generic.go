package httpclient

import (
	"context"
	"net/http"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return request[T](ctx, c, http.MethodGet, path, nil, opts)
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return request[T](ctx, c, http.MethodPost, path, body, opts)
}

func PutJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return request[T](ctx, c, http.MethodPut, path, body, opts)
}

func PatchJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return request[T](ctx, c, http.MethodPatch, path, body, opts)
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return request[T](ctx, c, http.MethodDelete, path, nil, opts)
}

func DoJSON[T any](
	ctx context.Context,
	c *Client,
	method, path string,
	body any,
	opts ...RequestOption,
) (*Response[T], error) {
	return request[T](ctx, c, method, path, body, opts)
}

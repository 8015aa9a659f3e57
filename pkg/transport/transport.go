package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Transport performs one network exchange for a submission. Implementations
// must return a *Error when the server answered with a rejection so callers
// can recover the response payload; failures without a response (connection
// refused, timeout) are returned as-is.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context, req Request) (*Response, error)

// Do implements Transport.
func (f Func) Do(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Request describes a single outgoing exchange. Exactly one of Body or
// Params is populated by the form coordinator: Params for get-style
// submissions, Body for everything else.
type Request struct {
	Method string
	URL    string
	Body   any
	Params map[string]any
	Header http.Header
}

// Response is the raw settled result of a request. Body holds the
// unmodified payload bytes; use JSON or Decode for structured access.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	decoded   any
	decodedOK bool
	tried     bool
}

// JSON lazily decodes the response body. The second return is false when
// the body is empty or not valid JSON.
func (r *Response) JSON() (any, bool) {
	if r == nil {
		return nil, false
	}
	if !r.tried {
		r.tried = true
		if len(bytes.TrimSpace(r.Body)) > 0 {
			var v any
			if err := json.Unmarshal(r.Body, &v); err == nil {
				r.decoded = v
				r.decodedOK = true
			}
		}
	}
	return r.decoded, r.decodedOK
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Body) == 0 {
		return fmt.Errorf("transport: empty response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("transport: decode response: %w", err)
	}
	return nil
}

// Error is a transport failure that carries the server's response, typically
// a non-2xx status. Response is nil when the exchange never produced one.
type Error struct {
	Response *Response
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "transport: <nil>"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Response != nil {
		return fmt.Sprintf("transport: request failed with status %d", e.Response.StatusCode)
	}
	return "transport: request failed"
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

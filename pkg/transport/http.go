package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// HTTPClient is the default Transport: JSON bodies out, raw bytes in.
// Server responses outside the 2xx range are returned as *Error with the
// response attached so the form layer can extract validation payloads.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	header  http.Header
	timeout time.Duration
}

// HTTPOption configures an HTTPClient before construction.
type HTTPOption func(*HTTPClient)

// WithClient overrides the underlying *http.Client.
func WithClient(client *http.Client) HTTPOption {
	return func(t *HTTPClient) {
		if client != nil {
			t.client = client
		}
	}
}

// WithBaseURL prefixes relative request URLs with base.
func WithBaseURL(base string) HTTPOption {
	return func(t *HTTPClient) {
		t.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithHeader sets a default header applied to every request. Per-request
// headers win on collision.
func WithHeader(key, value string) HTTPOption {
	return func(t *HTTPClient) {
		if t.header == nil {
			t.header = make(http.Header)
		}
		t.header.Set(key, value)
	}
}

// WithTimeout bounds each exchange with a per-request deadline.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(t *HTTPClient) {
		t.timeout = timeout
	}
}

// NewHTTPClient constructs the default transport.
func NewHTTPClient(opts ...HTTPOption) *HTTPClient {
	t := &HTTPClient{client: http.DefaultClient}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Do implements Transport.
func (t *HTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	if t == nil || t.client == nil {
		return nil, fmt.Errorf("transport: http client is not configured")
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("transport: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if t.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	target := req.URL
	if t.baseURL != "" && strings.HasPrefix(target, "/") {
		target = t.baseURL + target
	}
	if len(req.Params) > 0 {
		encoded, err := encodeParams(req.Params)
		if err != nil {
			return nil, err
		}
		if encoded != "" {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target = target + sep + encoded
		}
	}

	var body io.Reader
	sendJSON := false
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("transport: encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
		sendJSON = true
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, strings.ToUpper(req.Method), target, body)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	for key, values := range t.header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if sendJSON && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("transport: read response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &Error{Response: resp}
	}
	return resp, nil
}

// encodeParams flattens a parameter bag into a query string. Scalars are
// printed, slices repeat the key, and nested maps are JSON-encoded so the
// server can still recover structure.
func encodeParams(params map[string]any) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, key := range keys {
		switch v := params[key].(type) {
		case nil:
			values.Add(key, "")
		case []any:
			for _, item := range v {
				encoded, err := encodeParamValue(item)
				if err != nil {
					return "", err
				}
				values.Add(key, encoded)
			}
		default:
			encoded, err := encodeParamValue(v)
			if err != nil {
				return "", err
			}
			values.Add(key, encoded)
		}
	}
	return values.Encode(), nil
}

func encodeParamValue(v any) (string, error) {
	switch typed := v.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(typed), nil
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return "", fmt.Errorf("transport: encode query param: %w", err)
		}
		return string(encoded), nil
	}
}

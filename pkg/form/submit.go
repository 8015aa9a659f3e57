package form

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-formclient/pkg/transport"
)

// defaultTransport backs forms constructed without WithTransport.
var defaultTransport transport.Transport = transport.NewHTTPClient()

// RequestOption mutates the outgoing request after the form has populated
// it, covering the extra per-call configuration a submission may need.
type RequestOption func(*transport.Request)

// WithRequestHeader adds a header to this submission only.
func WithRequestHeader(key, value string) RequestOption {
	return func(req *transport.Request) {
		if req.Header == nil {
			req.Header = make(http.Header)
		}
		req.Header.Set(key, value)
	}
}

// WithExtraParam merges one additional query parameter into the request,
// on top of the field set a get-style submission already carries.
func WithExtraParam(key string, value any) RequestOption {
	return func(req *transport.Request) {
		if req.Params == nil {
			req.Params = make(map[string]any)
		}
		req.Params[key] = value
	}
}

// Submit drives one submission attempt end to end. Before the transport is
// invoked the form clears its errors, raises busy, and drops successful.
// The "get" method (case-sensitive) sends the field set as query
// parameters; every other method sends it as the request body.
//
// On success busy drops, successful rises, and the transport's response is
// returned unmodified. On failure busy drops, successful stays false, any
// response payload the failure carries is normalised into the error store,
// and the original failure is returned unchanged — never swallowed.
//
// Submit does not guard against overlapping attempts on the same form;
// callers wanting serialisation should consult Busy first.
func (f *Form) Submit(ctx context.Context, method, target string, opts ...RequestOption) (*transport.Response, error) {
	if f == nil {
		return nil, errors.New("form: form is nil")
	}
	f.StartProcessing()

	req := transport.Request{
		Method: method,
		URL:    target,
	}
	if method == "get" {
		req.Params = f.Data()
	} else {
		req.Body = f.Data()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&req)
	}

	tr := f.transport
	if tr == nil {
		tr = defaultTransport
	}

	resp, err := tr.Do(ctx, req)
	f.busy = false
	if err != nil {
		f.installFailure(err)
		return nil, err
	}
	f.successful = true
	return resp, nil
}

// Get submits the field set as query parameters.
func (f *Form) Get(ctx context.Context, target string, opts ...RequestOption) (*transport.Response, error) {
	return f.Submit(ctx, "get", target, opts...)
}

// Post submits the field set as the request body.
func (f *Form) Post(ctx context.Context, target string, opts ...RequestOption) (*transport.Response, error) {
	return f.Submit(ctx, "post", target, opts...)
}

// Put submits the field set as the request body.
func (f *Form) Put(ctx context.Context, target string, opts ...RequestOption) (*transport.Response, error) {
	return f.Submit(ctx, "put", target, opts...)
}

// Patch submits the field set as the request body.
func (f *Form) Patch(ctx context.Context, target string, opts ...RequestOption) (*transport.Response, error) {
	return f.Submit(ctx, "patch", target, opts...)
}

// Delete submits the field set as the request body.
func (f *Form) Delete(ctx context.Context, target string, opts ...RequestOption) (*transport.Response, error) {
	return f.Submit(ctx, "delete", target, opts...)
}

// installFailure extracts the server payload from a transport failure and
// installs the normalised result. Failures without a response (pure network
// errors) leave the store untouched; the caller still sees the failure.
func (f *Form) installFailure(err error) {
	var terr *transport.Error
	if !errors.As(err, &terr) || terr.Response == nil {
		return
	}
	payload, ok := terr.Response.JSON()
	f.errors.Set(normalizePayload(classifyPayload(payload, ok), f.defaultMessage))
}

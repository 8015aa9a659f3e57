// Package formclient binds editable form fields to a remote submission
// endpoint: it tracks the busy/successful lifecycle, collects field-level
// validation errors from server rejections, and restores original values on
// reset. The root package re-exports the building blocks from pkg/ for
// callers that want a single import.
package formclient

import (
	"context"

	"github.com/goliatone/go-formclient/pkg/form"
	"github.com/goliatone/go-formclient/pkg/openapiform"
	"github.com/goliatone/go-formclient/pkg/routes"
	"github.com/goliatone/go-formclient/pkg/transport"
)

// Form owns field values, the original snapshot, lifecycle flags, and the
// validation error store.
type Form = form.Form

// Errors holds field-scoped validation messages.
type Errors = form.Errors

// Option configures a Form at construction.
type Option = form.Option

// RequestOption adjusts a single submission.
type RequestOption = form.RequestOption

// Transport performs the network exchange for a submission.
type Transport = transport.Transport

// Resolver maps route names onto URL templates.
type Resolver = routes.Resolver

// New constructs a form around the given initial field values.
func New(fields map[string]any, opts ...Option) *Form {
	return form.New(fields, opts...)
}

// NewFromOpenAPI derives the initial field set from an OpenAPI operation's
// request body schema and constructs a form around it.
func NewFromOpenAPI(ctx context.Context, doc []byte, operationID string, opts ...Option) (*Form, error) {
	fields, err := openapiform.Fields(ctx, doc, operationID)
	if err != nil {
		return nil, err
	}
	return form.New(fields, opts...), nil
}

// NewResolver builds a route resolver from a name→template table.
func NewResolver(table map[string]string) *Resolver {
	return routes.New(table)
}

// WithTransport injects the transport submissions run through.
func WithTransport(t Transport) Option {
	return form.WithTransport(t)
}

// WithDefaultErrorMessage overrides the generic message installed for
// unusable rejection payloads.
func WithDefaultErrorMessage(message string) Option {
	return form.WithDefaultErrorMessage(message)
}

// NewHTTPTransport constructs the default JSON-over-HTTP transport.
func NewHTTPTransport(opts ...transport.HTTPOption) Transport {
	return transport.NewHTTPClient(opts...)
}

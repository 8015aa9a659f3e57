// Package transport defines the request capability a form submits through.
// The core is agnostic to transport identity: anything implementing
// Transport can carry a submission, and HTTPClient provides the default
// JSON-over-HTTP implementation. Server rejections surface as *Error so
// callers (and the form coordinator) can recover the response payload.
package transport

package form

import "github.com/goliatone/go-formclient/pkg/transport"

// DefaultErrorMessage is installed under the "error" key when a rejection
// carries a payload the normaliser cannot use.
const DefaultErrorMessage = "Something went wrong. Please try again."

// Option configures a Form at construction.
type Option func(*Form)

// WithTransport injects the transport submissions run through. Without it
// the form uses a shared default HTTP transport.
func WithTransport(t transport.Transport) Option {
	return func(f *Form) {
		if t != nil {
			f.transport = t
		}
	}
}

// WithDefaultErrorMessage overrides the generic message used for unusable
// rejection payloads.
func WithDefaultErrorMessage(message string) Option {
	return func(f *Form) {
		if message != "" {
			f.defaultMessage = message
		}
	}
}

// WithSanitizedMessages strips markup from server-provided error messages
// before they are installed, using a strict bluemonday policy. Enable it
// when messages are rendered into HTML without further escaping.
func WithSanitizedMessages() Option {
	return func(f *Form) {
		f.errors.sanitize = sanitizeMessage
	}
}

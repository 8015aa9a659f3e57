// Package form binds a set of editable field values to a remote submission
// endpoint. A Form owns the current values, an immutable snapshot of the
// originals for Reset, the busy/successful lifecycle flags, and an Errors
// store holding field-scoped validation messages reported by the server.
//
// Submissions run through an injected transport.Transport; server rejection
// payloads are normalised into per-field messages while the original failure
// is always re-signalled to the caller. A Form is bound to a single logical
// goroutine: mutations happen at submission boundaries and are not
// synchronised, so callers must not share one instance across goroutines.
package form

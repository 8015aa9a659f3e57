package form

import (
	"sort"

	"github.com/goliatone/go-formclient/pkg/transport"
)

// reservedFields are bookkeeping names a form never treats as data keys.
// The set is fixed and shared by every instance; initial field maps that
// collide with it are skipped at construction.
var reservedFields = map[string]struct{}{
	"busy":         {},
	"successful":   {},
	"errors":       {},
	"originalData": {},
	"transport":    {},
}

// IsReservedField reports whether name belongs to the bookkeeping set and
// can therefore never be a data key.
func IsReservedField(name string) bool {
	_, ok := reservedFields[name]
	return ok
}

// Form owns a set of named field values, the immutable snapshot taken at
// construction, and the submission lifecycle flags.
type Form struct {
	fields   map[string]any
	order    []string
	original map[string]any

	busy       bool
	successful bool
	errors     *Errors

	transport      transport.Transport
	defaultMessage string
}

// New builds a form around the given initial field values. The values are
// deep-copied into the original snapshot before being installed as live
// storage, so later mutation never corrupts what Reset restores. Initial
// keys iterate in sorted order; keys registered later via Set append.
func New(fields map[string]any, opts ...Option) *Form {
	f := &Form{
		fields:         make(map[string]any, len(fields)),
		original:       make(map[string]any, len(fields)),
		errors:         NewErrors(),
		defaultMessage: DefaultErrorMessage,
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if IsReservedField(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f.order = append(f.order, name)
		f.original[name] = deepCopy(fields[name])
		f.fields[name] = deepCopy(fields[name])
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Keys returns the data key names in deterministic iteration order.
func (f *Form) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.order...)
}

// Data returns a fresh map of the current field values. The result never
// aliases internal storage; mutating it does not touch the form.
func (f *Form) Data() map[string]any {
	if f == nil {
		return nil
	}
	out := make(map[string]any, len(f.order))
	for _, name := range f.order {
		out[name] = deepCopy(f.fields[name])
	}
	return out
}

// Get returns the current value of field, or nil when the form does not
// carry it.
func (f *Form) Get(field string) any {
	if f == nil {
		return nil
	}
	return f.fields[field]
}

// Set assigns a field value, registering the key when it is new. Reserved
// bookkeeping names are ignored.
func (f *Form) Set(field string, value any) {
	if f == nil || IsReservedField(field) {
		return
	}
	if _, ok := f.fields[field]; !ok {
		f.order = append(f.order, field)
	}
	f.fields[field] = value
}

// Fill replaces the value of every existing key with values[key]. Keys the
// form does not carry are ignored; keys absent from values become nil. Fill
// never registers new keys.
func (f *Form) Fill(values map[string]any) {
	if f == nil {
		return
	}
	for _, name := range f.order {
		f.fields[name] = deepCopy(values[name])
	}
}

// Reset restores every key from the original snapshot. The restored values
// are deep copies, so post-reset mutation leaves the snapshot intact. Keys
// registered after construction fall back to nil.
func (f *Form) Reset() {
	if f == nil {
		return
	}
	for _, name := range f.order {
		f.fields[name] = deepCopy(f.original[name])
	}
}

// Busy reports whether a submission is in flight.
func (f *Form) Busy() bool {
	return f != nil && f.busy
}

// Successful reports whether the most recent submission settled cleanly.
func (f *Form) Successful() bool {
	return f != nil && f.successful
}

// Errors exposes the validation error store.
func (f *Form) Errors() *Errors {
	if f == nil {
		return nil
	}
	return f.errors
}

// StartProcessing marks the form busy for a new attempt: all errors are
// cleared and the successful flag drops. Submit calls this before issuing
// the request; it is exported for callers driving a custom transport loop.
func (f *Form) StartProcessing() {
	if f == nil {
		return
	}
	f.errors.Clear()
	f.busy = true
	f.successful = false
}

// FinishProcessing marks a clean settle: busy drops, successful rises.
func (f *Form) FinishProcessing() {
	if f == nil {
		return
	}
	f.busy = false
	f.successful = true
}

// ClearError drops the error entry for a single field. UI layers call this
// when the user edits a field so stale messages disappear.
func (f *Form) ClearError(field string) {
	if f == nil {
		return
	}
	f.errors.Clear(field)
}

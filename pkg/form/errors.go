package form

import "fmt"

// Errors holds validation messages keyed by field name. Messages are stored
// as slices; servers that report a single string per field still surface
// through Get as the first (primary) message.
type Errors struct {
	items    map[string][]string
	sanitize func(string) string
}

// NewErrors returns an empty store.
func NewErrors() *Errors {
	return &Errors{items: make(map[string][]string)}
}

// Has reports whether field currently carries at least one message.
func (e *Errors) Has(field string) bool {
	if e == nil {
		return false
	}
	return len(e.items[field]) > 0
}

// Any reports whether any field carries a message.
func (e *Errors) Any() bool {
	if e == nil {
		return false
	}
	for _, messages := range e.items {
		if len(messages) > 0 {
			return true
		}
	}
	return false
}

// Get returns the primary message for field, or "" when it has none.
func (e *Errors) Get(field string) string {
	if e == nil {
		return ""
	}
	if messages := e.items[field]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// GetAll returns a copy of every message attached to field.
func (e *Errors) GetAll(field string) []string {
	if e == nil || len(e.items[field]) == 0 {
		return nil
	}
	return append([]string(nil), e.items[field]...)
}

// All returns a copy of the whole field→messages map.
func (e *Errors) All() map[string][]string {
	if e == nil {
		return nil
	}
	return cloneMessages(e.items)
}

// Set replaces the entire map with errs; there is no merge. The incoming
// map is copied and, when a sanitizer is configured, each message passes
// through it on the way in.
func (e *Errors) Set(errs map[string][]string) {
	if e == nil {
		return
	}
	items := make(map[string][]string, len(errs))
	for field, messages := range errs {
		cleaned := make([]string, 0, len(messages))
		for _, message := range messages {
			if e.sanitize != nil {
				message = e.sanitize(message)
			}
			cleaned = append(cleaned, message)
		}
		items[field] = cleaned
	}
	e.items = items
}

// Clear removes the named fields' entries, or every entry when no field is
// given. Clearing an absent field is a no-op.
func (e *Errors) Clear(fields ...string) {
	if e == nil {
		return
	}
	if len(fields) == 0 {
		e.items = make(map[string][]string)
		return
	}
	for _, field := range fields {
		delete(e.items, field)
	}
}

// coerceMessages folds the string-or-list shapes servers report into a
// message slice. Non-string scalars are printed rather than dropped.
func coerceMessages(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return []string{typed}
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(typed)}
	}
}

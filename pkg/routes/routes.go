// Package routes resolves named routes into URLs. A Resolver holds a
// name→template table; templates use {param} placeholders substituted from
// the parameters passed to Resolve. Unregistered names pass through as
// literal URLs so callers can mix named routes and raw paths freely.
package routes

import (
	"fmt"
	"strings"
)

// Resolver maps route names onto URL templates.
type Resolver struct {
	table map[string]string
}

// New builds a resolver from a name→template table. The table is copied;
// later mutation of the argument does not affect the resolver.
func New(table map[string]string) *Resolver {
	r := &Resolver{table: make(map[string]string, len(table))}
	for name, template := range table {
		r.Register(name, template)
	}
	return r
}

// Register adds or replaces a single route. Empty names are ignored.
func (r *Resolver) Register(name, template string) {
	if r == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if r.table == nil {
		r.table = make(map[string]string)
	}
	r.table[name] = strings.TrimSpace(template)
}

// Routes returns a copy of the registered table.
func (r *Resolver) Routes() map[string]string {
	if r == nil || len(r.table) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.table))
	for name, template := range r.table {
		out[name] = template
	}
	return out
}

// Resolve returns the URL for name. Registered templates have their
// {param} placeholders substituted from params; an unknown name is treated
// as a literal URL and returned as-is. A non-map params value is shorthand
// for {id: value}. Placeholders without a matching parameter are left
// intact so the mistake is visible in the output.
func (r *Resolver) Resolve(name string, params any) string {
	template := name
	if r != nil {
		if registered, ok := r.table[name]; ok {
			template = registered
		}
	}
	return expand(template, normalizeParams(params))
}

func normalizeParams(params any) map[string]any {
	switch typed := params.(type) {
	case nil:
		return nil
	case map[string]any:
		return typed
	case map[string]string:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = v
		}
		return out
	default:
		return map[string]any{"id": typed}
	}
}

func expand(template string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

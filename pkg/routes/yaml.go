package routes

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// routesDocument is the on-disk shape: either a top-level "routes" mapping
// or a bare name→template mapping.
type routesDocument struct {
	Routes map[string]string `yaml:"routes"`
}

// LoadYAML parses a YAML route table. Both of these layouts are accepted:
//
//	routes:
//	  users.show: /users/{id}
//
//	users.show: /users/{id}
func LoadYAML(data []byte) (*Resolver, error) {
	var doc routesDocument
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Routes) > 0 {
		return fromTable(doc.Routes)
	}

	var flat map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("routes: parse route table: %w", err)
	}
	return fromTable(flat)
}

// LoadFS reads path from fsys and parses it with LoadYAML.
func LoadFS(fsys fs.FS, path string) (*Resolver, error) {
	if fsys == nil {
		return nil, fmt.Errorf("routes: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("routes: read %s: %w", path, err)
	}
	return LoadYAML(data)
}

func fromTable(table map[string]string) (*Resolver, error) {
	for name, template := range table {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("routes: route table defines an empty name")
		}
		if strings.TrimSpace(template) == "" {
			return nil, fmt.Errorf("routes: route %q has an empty template", name)
		}
	}
	return New(table), nil
}

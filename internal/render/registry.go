// Package render turns tabular data into one of several named output formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// DefaultFormat is used when no format is requested
const DefaultFormat = "table"

var ErrInvalidFormat = errors.New("invalid output format")

// Renderer writes headers and rows to w. Every row has len(headers) cells.
type Renderer func(w io.Writer, headers []string, rows [][]string) error

// Registry maps format names to renderers
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Default returns a registry holding the built-in formats
func Default() *Registry {
	r := NewRegistry()
	r.Register("table", Table)
	r.Register("csv", CSV)
	r.Register("json", JSON)
	r.Register("json_array", JSONArray)
	r.Register("yaml", YAML)
	r.Register("xml", XML)
	r.Register("xlsx", XLSX)
	return r
}

// Register adds or replaces the renderer for a format name
func (r *Registry) Register(name string, renderer Renderer) {
	r.renderers[name] = renderer
}

// Has reports whether a format is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.renderers[name]
	return ok
}

// Get returns the renderer for a format. An empty name selects DefaultFormat.
func (r *Registry) Get(name string) (Renderer, error) {
	if name == "" {
		name = DefaultFormat
	}
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (one of %v)", ErrInvalidFormat, name, r.Formats())
	}
	return renderer, nil
}

// Formats returns the registered format names in sorted order
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render looks up the format and writes the data with it
func (r *Registry) Render(w io.Writer, format string, headers []string, rows [][]string) error {
	renderer, err := r.Get(format)
	if err != nil {
		return err
	}
	return renderer(w, headers, rows)
}

// Package render turns robot outcomes into output. Renderers are looked up by
// name so the CLI can select one with --format.
package render

import (
	"io"
	"sort"
	"strings"

	"github.com/flarebyte/toy-robot/internal/robot"
)

// Renderer writes outcomes as they are produced. Close flushes anything
// buffered; it must be called once after the last Render.
type Renderer interface {
	Render(o robot.Outcome) error
	Close() error
}

// Options apply to every renderer; renderers ignore what they do not use.
type Options struct {
	Color bool
}

// Factory builds a Renderer writing to w.
type Factory func(w io.Writer, opts Options) Renderer

var registry = map[string]Factory{}

// Register adds a renderer factory under name.
func Register(name string, f Factory) {
	registry[name] = f
}

// New builds the renderer registered under name.
func New(name string, w io.Writer, opts Options) (Renderer, error) {
	f, ok := registry[name]
	if !ok {
		return nil, ErrUnknown{name: name}
	}
	return f(w, opts), nil
}

// Names lists the registered renderer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ErrUnknown is returned when no renderer has the requested name.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string {
	return "unknown output format: " + e.name + " (supported: " + strings.Join(Names(), ", ") + ")"
}

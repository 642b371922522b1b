package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/specialistvlad/seedline/internal/result"
)

// Handler runs a resolved command. It writes user-facing output to out.
type Handler func(ctx context.Context, out io.Writer, res *result.ParseResult) error

// Registry holds all the registered handlers, keyed by the handler name a
// CommandSpec refers to.
type Registry struct {
	all map[string]Handler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		all: make(map[string]Handler),
	}
}

// Register registers a Go function under a handler name.
func (r *Registry) Register(name string, handler Handler) {
	if handler == nil {
		panic(fmt.Sprintf("handler '%s' is nil", name))
	}
	if _, exists := r.all[name]; exists {
		panic(fmt.Sprintf("handler with name '%s' already registered", name))
	}
	slog.Debug("Registering command handler.", "name", name)
	r.all[name] = handler
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.all[name]
	return h, ok
}

// Names returns the registered handler names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.all))
	for name := range r.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.all)
}

// Module is a set of handlers compiled into the binary.
type Module interface {
	Register(r *Registry)
}

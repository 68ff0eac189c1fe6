// Package routes provides the route-to-URL registry the navigation layer
// resolves link targets against. The registry is populated at process start
// and read-only afterwards, so concurrent reads need no locking.
package routes

import (
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned for (app, route) pairs with no registered URL.
// The navigation resolver treats it as a soft failure and renders the item
// inert instead of erroring.
var ErrUnknownRoute = errors.New("unknown route")

// Registry maps (app, route name) pairs to URL paths.
type Registry struct {
	byApp map[string]map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byApp: make(map[string]map[string]string)}
}

// Register adds a named route. Registering the same (app, name) pair twice
// is a configuration defect and returns an error.
func (r *Registry) Register(app, name, path string) error {
	if app == "" || name == "" {
		return fmt.Errorf("route registration needs app and name, got (%q, %q)", app, name)
	}
	if path == "" {
		return fmt.Errorf("route %s:%s registered with empty path", app, name)
	}
	named, ok := r.byApp[app]
	if !ok {
		named = make(map[string]string)
		r.byApp[app] = named
	}
	if prev, dup := named[name]; dup {
		return fmt.Errorf("route %s:%s already registered as %q", app, name, prev)
	}
	named[name] = path
	return nil
}

// URL resolves an (app, route name) pair to its path.
func (r *Registry) URL(app, name string) (string, error) {
	if named, ok := r.byApp[app]; ok {
		if path, ok := named[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s:%s", ErrUnknownRoute, app, name)
}

// Len returns the total number of registered routes.
func (r *Registry) Len() int {
	n := 0
	for _, named := range r.byApp {
		n += len(named)
	}
	return n
}

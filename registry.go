package jsonable

import (
	"fmt"
	"sort"
)

// Registry maps boundary names to tagged consumers. Hosts that route
// payloads by name (a queue worker dispatching on message type, say)
// register boundaries at startup and wrap them once.
//
// Registration is expected to finish before any concurrent access; the map
// is not locked.
type Registry struct {
	boundaries map[string]*Tagged
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{boundaries: make(map[string]*Tagged)}
}

// Register binds name to t. Re-registering a name overwrites the previous
// binding; the last write wins.
func (r *Registry) Register(name string, t *Tagged) {
	r.boundaries[name] = t
}

// Lookup returns the tagged consumer bound to name.
func (r *Registry) Lookup(name string) (*Tagged, bool) {
	t, ok := r.boundaries[name]
	return t, ok
}

// Names lists registered boundary names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.boundaries))
	for name := range r.boundaries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Wrap builds the validated consumer for a registered boundary.
func (r *Registry) Wrap(cfg Config, name string) (Consumer, error) {
	t, ok := r.boundaries[name]
	if !ok {
		return nil, fmt.Errorf("jsonable: unknown boundary %q", name)
	}
	return Wrap(cfg, t)
}

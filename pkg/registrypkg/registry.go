// Package registrypkg provides a read-only name to capability registry.
package registrypkg

import "sort"

// Registry maps a capability name to its handler.
//
// It is populated once at construction and never changes afterwards, so it is
// safe for concurrent use without locking.
type Registry[T any] struct {
	items map[string]T
}

// New returns a registry holding a copy of items.
func New[T any](items map[string]T) *Registry[T] {
	r := &Registry[T]{items: make(map[string]T, len(items))}
	for name, item := range items {
		r.items[name] = item
	}

	return r
}

// Get returns the handler registered under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	item, ok := r.items[name]
	return item, ok
}

// Names returns the registered names in ascending order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered handlers.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/pdarules/pkg/errors"
)

// Registry holds named items in registration order. Names are matched
// case-insensitively and with surrounding spaces ignored, so values read
// from configuration files can be used as they are.
type Registry[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

// New creates an empty Registry
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Normalize returns the form a name is stored under
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds item under name. The first registration of a name wins.
func (r *Registry[T]) Register(name string, item T) error {
	key := Normalize(name)
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", key).
			WithDetail("name", key)
	}
	r.items[key] = item
	r.order = append(r.order, key)
	return nil
}

// Get returns the item registered under name
func (r *Registry[T]) Get(name string) (T, error) {
	key := Normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%q is not registered (known: %s)",
			key, strings.Join(r.order, ", ")).
			WithDetail("name", key)
	}
	return item, nil
}

// Has reports whether name is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[Normalize(name)]
	return exists
}

// Names returns the registered names in registration order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Resolve looks up names in the order given. With no names every item is
// returned in registration order. The first unknown name fails the whole
// lookup.
func (r *Registry[T]) Resolve(names ...string) ([]T, error) {
	if len(names) == 0 {
		names = r.Names()
	}
	out := make([]T, 0, len(names))
	for _, name := range names {
		item, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// MustRegister registers an item and panics if registration fails.
// Use it from init functions, where a failure is a programming error.
func MustRegister[T any](r *Registry[T], name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

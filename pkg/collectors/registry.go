package collectors

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages a set of named samplers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	samplers map[string]Sampler
}

// NewRegistry returns an empty registry ready for sampler registration.
func NewRegistry() *Registry {
	return &Registry{samplers: make(map[string]Sampler)}
}

// Register adds a sampler to the registry. It returns an error if a
// sampler with the same name is already registered.
func (r *Registry) Register(s Sampler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, exists := r.samplers[name]; exists {
		return fmt.Errorf("sampler %q already registered", name)
	}
	r.samplers[name] = s
	return nil
}

// Get returns the sampler with the given name, or false if not found.
func (r *Registry) Get(name string) (Sampler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.samplers[name]
	return s, ok
}

// Lookup is Get with an error naming the available samplers.
func (r *Registry) Lookup(name string) (Sampler, error) {
	if s, ok := r.Get(name); ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown metric %q (available: %v)", name, r.List())
}

// List returns a sorted slice of all registered sampler names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.samplers))
	for name := range r.samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

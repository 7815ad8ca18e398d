package buffer

import (
	"sort"
	"sync"
)

// Resolver looks up a surface by target identifier.
type Resolver interface {
	Resolve(target string) (Surface, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(target string) (Surface, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(target string) (Surface, bool) {
	return f(target)
}

// Registry holds named surfaces.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register adds or replaces the surface for target.
func (r *Registry) Register(target string, s Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[target] = s
}

// Unregister removes target. It reports whether target was present.
func (r *Registry) Unregister(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.surfaces[target]
	delete(r.surfaces, target)
	return ok
}

// Resolve implements Resolver.
func (r *Registry) Resolve(target string) (Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.surfaces[target]
	return s, ok
}

// Targets returns the registered identifiers in sorted order.
func (r *Registry) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.surfaces))
	for name := range r.surfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores frontends by name, providing discovery and duplication
// safeguards. The orchestrator embeds one; callers can share theirs for
// dependency injection.
type Registry struct {
	mu        sync.RWMutex
	frontends map[string]Frontend
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		frontends: make(map[string]Frontend),
	}
}

// Register adds a frontend by its Name(). Duplicate names return an error.
func (r *Registry) Register(frontend Frontend) error {
	if frontend == nil {
		return fmt.Errorf("render: frontend is required")
	}
	name := frontend.Name()
	if name == "" {
		return fmt.Errorf("render: frontend name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.frontends[name]; exists {
		return fmt.Errorf("render: frontend %q already registered", name)
	}

	r.frontends[name] = frontend
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(frontend Frontend) {
	if err := r.Register(frontend); err != nil {
		panic(err)
	}
}

// Get retrieves a frontend by name.
func (r *Registry) Get(name string) (Frontend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	frontend, ok := r.frontends[name]
	if !ok {
		return nil, fmt.Errorf("render: frontend %q not found", name)
	}
	return frontend, nil
}

// List returns the sorted frontend names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.frontends))
	for name := range r.frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a frontend is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.frontends[name]
	return ok
}

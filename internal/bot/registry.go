package bot

import (
	"fmt"
	"sync"
)

// Registry holds registered modules.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
}

// NewRegistry creates a new module registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make([]Module, 0),
	}
}

// Register adds a module to the registry.
// Module names must be unique.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.modules {
		if existing.Name() == m.Name() {
			return fmt.Errorf("module %s is already registered", m.Name())
		}
	}
	r.modules = append(r.modules, m)
	return nil
}

// MustRegister is like Register but panics on a duplicate name.
func (r *Registry) MustRegister(modules ...Module) *Registry {
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}

// Modules returns a snapshot of all registered modules.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]Module, len(r.modules))
	copy(result, r.modules)
	return result
}

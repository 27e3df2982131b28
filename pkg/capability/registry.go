package capability

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps gate names to rules. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	gates map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{gates: make(map[string]Rule)}
}

// Register adds a gate. Names are unique; registering a name twice fails with
// ErrGateExists.
func (r *Registry) Register(name string, rule Rule) error {
	if name == "" {
		return errors.Join(ErrInvalidGate, errors.New("gate name cannot be empty"))
	}
	if rule == nil {
		return errors.Join(ErrInvalidGate, fmt.Errorf("gate %q has no rule", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.gates[name]; exists {
		return fmt.Errorf("%w: %q", ErrGateExists, name)
	}
	r.gates[name] = rule
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, rule Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(err)
	}
}

// IsEnabled evaluates the named gate against the kit in ctx.
func (r *Registry) IsEnabled(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	rule, exists := r.gates[name]
	r.mu.RUnlock()

	if !exists {
		return false, fmt.Errorf("%w: %q", ErrGateNotFound, name)
	}

	ok, err := rule.Evaluate(ctx)
	if err != nil {
		return false, fmt.Errorf("gate %q: %w", name, err)
	}
	return ok, nil
}

// Names returns the registered gate names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.gates))
}

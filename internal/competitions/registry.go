package competitions

import (
	"fmt"

	"github.com/trentd187/golf-tour/internal/tour"
)

// Registry is the set of competitions a deployment offers. It is built once at
// start-up and handed to the engine and the service layer.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry validates and indexes the given definitions. IDs must be unique
// and every definition needs a Compute function.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("competition %q has no id", d.Name)
		}
		if d.Compute == nil {
			return nil, fmt.Errorf("competition %q has no compute function", d.ID)
		}
		if d.Scope != tour.ScopeRound && d.Scope != tour.ScopeTour {
			return nil, fmt.Errorf("competition %q has unknown scope %q", d.ID, d.Scope)
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("duplicate competition id %q", d.ID)
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return r, nil
}

// Get returns the definition with the given ID.
func (r *Registry) Get(id string) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// All returns every definition in registration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ForScope returns the definitions that compute over the given scope.
func (r *Registry) ForScope(scope tour.Scope) []Definition {
	var out []Definition
	for _, d := range r.defs {
		if d.Scope == scope {
			out = append(out, d)
		}
	}
	return out
}

// DefaultRegistry returns the full competition catalog.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Catalog()...)
	if err != nil {
		// The catalog is static; an error here is a programming mistake.
		panic(err)
	}
	return r
}

package registry

import (
	"sort"
	"sync"

	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/models"
)

// InstantiableRegistry maps every fulfilled type identity to the component
// descriptor that can produce it. It is populated once by the front-end and
// queried read-only by the engine; generation runs never share a registry.
type InstantiableRegistry struct {
	byType map[string]*models.Instantiable // canonical type spelling -> descriptor
	mu     sync.RWMutex
}

// NewInstantiableRegistry creates an empty registry
func NewInstantiableRegistry() *InstantiableRegistry {
	return &InstantiableRegistry{
		byType: make(map[string]*models.Instantiable),
	}
}

// Register indexes a component under its concrete type and every additional
// type it fulfills. Two components fulfilling the same type identity is a
// structural fault reported with both source locations.
func (r *InstantiableRegistry) Register(inst *models.Instantiable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range inst.FulfilledTypes() {
		key := t.String()
		if existing, exists := r.byType[key]; exists {
			return errors.NewRegistrationError(
				key,
				errors.SourceLocation{File: inst.File, Line: inst.Line},
				errors.SourceLocation{File: existing.File, Line: existing.Line},
			)
		}
	}

	for _, t := range inst.FulfilledTypes() {
		r.byType[t.String()] = inst
	}
	return nil
}

// Lookup retrieves the component that fulfills a type identity
func (r *InstantiableRegistry) Lookup(t models.TypeDescription) (*models.Instantiable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, exists := r.byType[t.String()]
	return inst, exists
}

// Instantiables returns every distinct registered component, ordered by the
// canonical spelling of its concrete type so iteration is deterministic
func (r *InstantiableRegistry) Instantiables() []*models.Instantiable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*models.Instantiable]bool)
	var insts []*models.Instantiable
	for _, inst := range r.byType {
		if !seen[inst] {
			seen[inst] = true
			insts = append(insts, inst)
		}
	}

	sort.Slice(insts, func(i, j int) bool {
		return insts[i].ConcreteType.Less(insts[j].ConcreteType)
	})
	return insts
}

// Len returns the number of distinct registered components
func (r *InstantiableRegistry) Len() int {
	return len(r.Instantiables())
}

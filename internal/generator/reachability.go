package generator

import (
	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/models"
	"github.com/adam-zethraeus/safedi/internal/registry"
)

// possibleRoots returns the components whose declared dependencies are all
// self-satisfied by instantiation. A received property disqualifies a
// component from rootness; a forwarded property does not, because the
// generated initializer's caller supplies it directly.
func possibleRoots(reg *registry.InstantiableRegistry) []*models.Instantiable {
	var possible []*models.Instantiable
	for _, inst := range reg.Instantiables() {
		if !inst.HasReceivedProperties() {
			possible = append(possible, inst)
		}
	}
	return possible
}

// computeReachable performs a depth-first traversal over instantiate edges
// from each possible root, visiting each distinct component at most once.
// A reachable dependency with no registry entry aborts immediately.
func computeReachable(reg *registry.InstantiableRegistry, possible []*models.Instantiable) ([]*models.Instantiable, error) {
	visited := make(map[string]bool)
	var reachable []*models.Instantiable

	var visit func(inst *models.Instantiable) error
	visit = func(inst *models.Instantiable) error {
		key := inst.ConcreteType.String()
		if visited[key] {
			return nil
		}
		visited[key] = true
		reachable = append(reachable, inst)

		for _, prop := range inst.InstantiatedProperties() {
			child, ok := reg.Lookup(prop.Type)
			if !ok {
				return errors.NewUnresolvableTypeError(prop.Type.String(), inst.ConcreteType.String())
			}
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}

	for _, inst := range possible {
		if err := visit(inst); err != nil {
			return nil, err
		}
	}
	return reachable, nil
}

// rootInstantiables computes the true dependency-tree roots: possible roots
// minus every component that some reachable component instantiates. The
// reachable set is returned alongside so scope building covers exactly the
// components the roots can see.
func rootInstantiables(reg *registry.InstantiableRegistry) ([]*models.Instantiable, []*models.Instantiable, error) {
	possible := possibleRoots(reg)

	reachable, err := computeReachable(reg, possible)
	if err != nil {
		return nil, nil, err
	}

	childTypes := make(map[string]bool)
	for _, inst := range reachable {
		for _, prop := range inst.InstantiatedProperties() {
			if child, ok := reg.Lookup(prop.Type); ok {
				childTypes[child.ConcreteType.String()] = true
			}
		}
	}

	var roots []*models.Instantiable
	for _, inst := range possible {
		if !childTypes[inst.ConcreteType.String()] {
			roots = append(roots, inst)
		}
	}
	return roots, reachable, nil
}

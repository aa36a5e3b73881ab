package generator

import (
	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/models"
)

// validateReceivedProperties walks the scope tree from each root and checks
// that every received property is fulfilled by a matching ancestor-owned
// property somewhere along the path. Violations are collected across the
// whole tree and reported together as one aggregated error.
//
// A component already on the active ancestor stack is never re-entered: a
// cycle bounds the traversal for that branch without raising a diagnostic.
func validateReceivedProperties(roots []*Scope) error {
	var violations []errors.PropertyViolation

	var walk func(scope *Scope, ancestors []*Scope, receivable []models.Property)
	walk = func(scope *Scope, ancestors []*Scope, receivable []models.Property) {
		for _, prop := range scope.Instantiable.Properties {
			if prop.Source != models.SourceReceived {
				continue
			}
			if fulfilledBy(prop, receivable) {
				continue
			}
			chain := make([]string, 0, len(ancestors)+1)
			for _, a := range ancestors {
				chain = append(chain, a.Instantiable.ConcreteType.String())
			}
			chain = append(chain, scope.Instantiable.ConcreteType.String())
			violations = append(violations, errors.PropertyViolation{
				Property: prop.String(),
				Chain:    chain,
			})
		}

		// Every branch descends with its own copy of the stack and the
		// receivable set; siblings must not observe each other's frames.
		// Only owned properties become receivable by descendants.
		next := append(append([]*Scope{}, ancestors...), scope)
		extended := append(append([]models.Property{}, receivable...), scope.Instantiable.OwnedProperties()...)

		for _, pti := range scope.PropertiesToInstantiate {
			if onStack(next, pti.Scope) {
				continue
			}
			walk(pti.Scope, next, extended)
		}
	}

	for _, root := range roots {
		walk(root, nil, nil)
	}

	if len(violations) > 0 {
		return &errors.ValidationError{Violations: violations}
	}
	return nil
}

// fulfilledBy reports whether a matching property is in the receivable set
func fulfilledBy(prop models.Property, receivable []models.Property) bool {
	for _, r := range receivable {
		if r.Matches(prop) {
			return true
		}
	}
	return false
}

// onStack reports identity membership of a scope in the active ancestor stack
func onStack(stack []*Scope, scope *Scope) bool {
	for _, s := range stack {
		if s == scope {
			return true
		}
	}
	return false
}

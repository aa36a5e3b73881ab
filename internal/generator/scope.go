package generator

import (
	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/models"
)

// InstantiationKind tags an instantiate edge as eager or lazy
type InstantiationKind int

const (
	// InstantiationEager builds the child unconditionally at construction time
	InstantiationEager InstantiationKind = iota
	// InstantiationLazy defers the child behind a memoized thunk
	InstantiationLazy
)

// Scope is a node in the resolved dependency tree: one component plus the
// child properties it must instantiate. One Scope is shared across every type
// name its component fulfills, so multiple map entries may alias the same
// object; identity, not structure, governs cycle detection.
type Scope struct {
	Instantiable            *models.Instantiable
	PropertiesToInstantiate []PropertyToInstantiate
}

// PropertyToInstantiate pairs a child property with the component and scope
// that fulfill it
type PropertyToInstantiate struct {
	Property     models.Property
	Instantiable *models.Instantiable
	Scope        *Scope
	Kind         InstantiationKind
}

// buildScopeMap produces a map from every fulfilled type spelling of every
// reachable component to one shared Scope per distinct component, then
// resolves each instantiated property against the same map. A failed child
// lookup cannot happen once reachability validation has passed, so it is
// reported as an internal fault rather than a user diagnostic.
func buildScopeMap(reachable []*models.Instantiable) (map[string]*Scope, error) {
	scopes := make(map[string]*Scope)
	for _, inst := range reachable {
		scope := &Scope{Instantiable: inst}
		for _, t := range inst.FulfilledTypes() {
			scopes[t.String()] = scope
		}
	}

	for _, inst := range reachable {
		scope := scopes[inst.ConcreteType.String()]
		for _, prop := range inst.Properties {
			var kind InstantiationKind
			switch prop.Source {
			case models.SourceInstantiated:
				kind = InstantiationEager
			case models.SourceLazyInstantiated:
				kind = InstantiationLazy
			default:
				continue
			}

			child, ok := scopes[prop.Type.String()]
			if !ok {
				return nil, errors.NewInternalError(
					"no scope for reachable type '%s' required by '%s'",
					prop.Type.String(), inst.ConcreteType.String(),
				)
			}
			scope.PropertiesToInstantiate = append(scope.PropertiesToInstantiate, PropertyToInstantiate{
				Property:     prop,
				Instantiable: child.Instantiable,
				Scope:        child,
				Kind:         kind,
			})
		}
	}
	return scopes, nil
}

package models

// Instantiable describes a declared component: its concrete type, the
// dependency properties it declares, and any additional type identities it
// also satisfies. Identity is the concrete type; an Instantiable may be looked
// up in the registry by any of its fulfilled types.
type Instantiable struct {
	ConcreteType    TypeDescription
	Properties      []Property
	AdditionalTypes []TypeDescription // extra types this component fulfills
	IsReferenceType bool              // reference types get a convenience initializer

	// Source location of the declaration, for error reporting
	File string
	Line int
}

// FulfilledTypes returns every type identity this component satisfies,
// concrete type first
func (i *Instantiable) FulfilledTypes() []TypeDescription {
	types := make([]TypeDescription, 0, len(i.AdditionalTypes)+1)
	types = append(types, i.ConcreteType)
	types = append(types, i.AdditionalTypes...)
	return types
}

// ForwardedProperty returns the component's forwarded property, or nil if it
// has none. At most one forwarded property exists per component; the
// front-end rejects declarations with more before the engine runs.
func (i *Instantiable) ForwardedProperty() *Property {
	for idx := range i.Properties {
		if i.Properties[idx].Source == SourceForwarded {
			return &i.Properties[idx]
		}
	}
	return nil
}

// OwnedProperties returns the properties this component owns rather than
// merely passes through. Received properties are excluded: a property must be
// owned to become receivable by descendants.
func (i *Instantiable) OwnedProperties() []Property {
	var owned []Property
	for _, p := range i.Properties {
		if p.Source != SourceReceived {
			owned = append(owned, p)
		}
	}
	return owned
}

// InstantiatedProperties returns the properties fulfilled by instantiation,
// eager or lazy
func (i *Instantiable) InstantiatedProperties() []Property {
	var deps []Property
	for _, p := range i.Properties {
		if p.Source == SourceInstantiated || p.Source == SourceLazyInstantiated {
			deps = append(deps, p)
		}
	}
	return deps
}

// HasReceivedProperties reports whether any property must be supplied by an
// ancestor
func (i *Instantiable) HasReceivedProperties() bool {
	for _, p := range i.Properties {
		if p.Source == SourceReceived {
			return true
		}
	}
	return false
}

package models

import (
	"strings"
)

// PropertySource represents how a component property is fulfilled
type PropertySource int

const (
	// SourceInstantiated marks a child that is eagerly built at construction time
	SourceInstantiated PropertySource = iota
	// SourceLazyInstantiated marks a child built behind a memoized, first-access thunk
	SourceLazyInstantiated
	// SourceReceived marks a dependency that must be supplied by an ancestor
	SourceReceived
	// SourceForwarded marks a single pass-through constructor parameter
	SourceForwarded
)

// String returns the string representation of the property source
func (s PropertySource) String() string {
	switch s {
	case SourceInstantiated:
		return "instantiated"
	case SourceLazyInstantiated:
		return "lazyInstantiated"
	case SourceReceived:
		return "received"
	case SourceForwarded:
		return "forwarded"
	default:
		return "unknown"
	}
}

// TypeDescription is the canonical identity of a concrete or generic type.
// Equality and ordering are structural, computed over the canonical source
// spelling, so it can be used as a stable map key.
type TypeDescription struct {
	Name        string            // base type name, e.g. "Cache"
	GenericArgs []TypeDescription // generic arguments, e.g. Cache<String>
	Existential bool              // "any Protocol" marker
}

// String returns the canonical source spelling of the type
func (t TypeDescription) String() string {
	var b strings.Builder
	if t.Existential {
		b.WriteString("any ")
	}
	b.WriteString(t.Name)
	if len(t.GenericArgs) > 0 {
		b.WriteString("<")
		for i, arg := range t.GenericArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteString(">")
	}
	return b.String()
}

// Equal reports whether two type descriptions denote the same type
func (t TypeDescription) Equal(other TypeDescription) bool {
	return t.String() == other.String()
}

// Less orders type descriptions lexicographically on their canonical spelling
func (t TypeDescription) Less(other TypeDescription) bool {
	return t.String() < other.String()
}

// Property is a named, typed member of a component that participates in
// dependency wiring
type Property struct {
	Name   string
	Type   TypeDescription
	Source PropertySource
}

// String returns the property rendered as "name: Type"
func (p Property) String() string {
	return p.Name + ": " + p.Type.String()
}

// Matches reports whether another property has the same name and type.
// Source is deliberately ignored: a received property is satisfied by any
// ancestor-owned property of matching name and type, regardless of how the
// ancestor fulfills it.
func (p Property) Matches(other Property) bool {
	return p.Name == other.Name && p.Type.Equal(other.Type)
}

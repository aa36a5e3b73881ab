package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/adam-zethraeus/safedi/internal/models"
)

const indentUnit = "    "

// bindingRegion tracks the local bindings of one nesting level of the
// generated initializer body. A lazy thunk opens a child region: lookups see
// every enclosing binding (the closure captures them) while new bindings stay
// local, so sibling thunks never see each other's work.
type bindingRegion struct {
	parent *bindingRegion
	names  map[string]string // binding key -> binding name
	used   map[string]bool   // identifiers taken at this level
}

func newBindingRegion() *bindingRegion {
	return &bindingRegion{
		names: make(map[string]string),
		used:  make(map[string]bool),
	}
}

func (r *bindingRegion) child() *bindingRegion {
	inner := newBindingRegion()
	inner.parent = r
	return inner
}

// bind assigns a deterministic name for a binding: the lower-cased concrete
// type name, suffixed with a counter on collision within the region chain
func (r *bindingRegion) bind(key string, t models.TypeDescription) string {
	base := lowerFirst(t.Name)
	name := base
	for i := 2; r.taken(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	r.used[name] = true
	r.names[key] = name
	return name
}

func (r *bindingRegion) lookup(key string) (string, bool) {
	for cur := r; cur != nil; cur = cur.parent {
		if name, ok := cur.names[key]; ok {
			return name, true
		}
	}
	return "", false
}

func (r *bindingRegion) taken(name string) bool {
	for cur := r; cur != nil; cur = cur.parent {
		if cur.used[name] {
			return true
		}
	}
	return false
}

// bindingKey separates eager and lazy constructions of the same concrete
// type: an eager consumer needs the raw value while a lazy consumer needs
// the thunk
func bindingKey(t models.TypeDescription, kind InstantiationKind) string {
	if kind == InstantiationLazy {
		return "lazy " + t.String()
	}
	return t.String()
}

// emitter accumulates the Swift text of one nesting level of the body
type emitter struct {
	b strings.Builder
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.b, format, args...)
}

// frame is one level of the active construction stack: the scope under
// construction plus the emitter, region, and indent its bindings land in.
// Eager children share their owner's surfaces; a lazy thunk opens its own.
// Keeping the surfaces on the frame lets a received property emit its
// fulfilling binding into the ancestor that owns it rather than into
// whatever thunk happens to be rendering.
type frame struct {
	scope  *Scope
	e      *emitter
	region *bindingRegion
	depth  int
}

// renderer renders one root subtree. Scope data is read-only; each root gets
// its own renderer so subtrees can render in parallel.
type renderer struct {
	building map[*Scope]bool // constructions currently in progress
}

// renderRootExtension renders the initializer extension for one root scope.
// A root with no dependencies needs no generated code: its default
// initializer already suffices.
func renderRootExtension(root *Scope) string {
	inst := root.Instantiable
	if len(inst.Properties) == 0 {
		return ""
	}
	// A subtree that instantiates one of its own ancestors cannot be
	// constructed; the root keeps its default initializer instead of
	// receiving a body with dangling references.
	if subtreeHasCycle(root) {
		return ""
	}

	e := &emitter{}
	e.printf("extension %s {\n", inst.ConcreteType.String())

	initKeyword := "init"
	if inst.IsReferenceType {
		initKeyword = "convenience init"
	}
	var params string
	if forwarded := inst.ForwardedProperty(); forwarded != nil {
		params = fmt.Sprintf("%s: %s", forwarded.Name, forwarded.Type.String())
	}
	e.printf("%s%s(%s) {\n", indentUnit, initKeyword, params)

	r := &renderer{building: make(map[*Scope]bool)}
	frames := []*frame{{scope: root, e: e, region: newBindingRegion(), depth: 2}}
	args := make([]string, 0, len(inst.Properties))
	for _, prop := range inst.Properties {
		args = append(args, fmt.Sprintf("%s: %s", prop.Name, r.valueFor(prop, frames)))
	}

	e.printf("%sself.init(%s)\n", strings.Repeat(indentUnit, 2), strings.Join(args, ", "))
	e.printf("%s}\n", indentUnit)
	e.printf("}\n")
	return e.b.String()
}

// subtreeHasCycle reports whether any instantiate path from the root revisits
// a scope already on that path
func subtreeHasCycle(root *Scope) bool {
	var walk func(scope *Scope, path []*Scope) bool
	walk = func(scope *Scope, path []*Scope) bool {
		if onStack(path, scope) {
			return true
		}
		next := append(append([]*Scope{}, path...), scope)
		for _, pti := range scope.PropertiesToInstantiate {
			if walk(pti.Scope, next) {
				return true
			}
		}
		return false
	}
	return walk(root, nil)
}

// valueFor resolves the expression passed for one property of the component
// under construction, emitting whatever bindings the expression needs first.
// The last frame is the component whose arguments are being rendered.
func (r *renderer) valueFor(prop models.Property, frames []*frame) string {
	top := frames[len(frames)-1]
	switch prop.Source {
	case models.SourceForwarded:
		// Copied verbatim from the generated initializer's own parameter.
		return prop.Name
	case models.SourceReceived:
		// Validation guarantees some ancestor owns a matching property. The
		// binding is emitted into that ancestor's frame so every consumer,
		// inside or outside a thunk, shares the one instance the ancestor
		// owns. Nearest ancestor wins.
		for i := len(frames) - 1; i >= 0; i-- {
			ancestor := frames[i]
			for _, pti := range ancestor.scope.PropertiesToInstantiate {
				if pti.Property.Matches(prop) {
					return r.construct(pti, frames[:i+1])
				}
			}
			if forwarded := ancestor.scope.Instantiable.ForwardedProperty(); forwarded != nil && forwarded.Matches(prop) {
				return prop.Name
			}
		}
		return prop.Name
	default:
		for _, pti := range top.scope.PropertiesToInstantiate {
			if pti.Property.Name == prop.Name {
				return r.construct(pti, frames)
			}
		}
		return prop.Name
	}
}

// construct emits the binding for one property-to-instantiate into the last
// frame, dependencies first, and returns the binding name. Constructions of
// the same component within one region chain share a single binding. A
// received property hands construct the frames truncated at the owning
// ancestor, so the binding lands in that ancestor's emitter and region.
func (r *renderer) construct(pti PropertyToInstantiate, frames []*frame) string {
	owner := frames[len(frames)-1]
	key := bindingKey(pti.Instantiable.ConcreteType, pti.Kind)
	if name, ok := owner.region.lookup(key); ok {
		return name
	}
	if r.building[pti.Scope] {
		// A component whose construction is already in progress cannot be
		// demanded again; the reference is passed through by name to bound
		// the recursion.
		return pti.Property.Name
	}
	r.building[pti.Scope] = true
	defer delete(r.building, pti.Scope)

	concrete := pti.Instantiable.ConcreteType
	indent := strings.Repeat(indentUnit, owner.depth)

	if pti.Kind == InstantiationLazy {
		// The dependency chain is built inside the thunk so nothing is
		// evaluated before first access; the host Lazy primitive guarantees
		// at-most-once, memoized evaluation.
		name := owner.region.bind(key, concrete)
		inner := &frame{scope: pti.Scope, e: &emitter{}, region: owner.region.child(), depth: owner.depth + 1}
		next := append(append([]*frame{}, frames...), inner)
		args := make([]string, 0, len(pti.Instantiable.Properties))
		for _, prop := range pti.Instantiable.Properties {
			args = append(args, fmt.Sprintf("%s: %s", prop.Name, r.valueFor(prop, next)))
		}
		body := inner.e.b.String()
		if body == "" {
			owner.e.printf("%slet %s = Lazy { %s(%s) }\n", indent, name, concrete.String(), strings.Join(args, ", "))
		} else {
			owner.e.printf("%slet %s = Lazy {\n", indent, name)
			owner.e.b.WriteString(body)
			owner.e.printf("%sreturn %s(%s)\n", indent+indentUnit, concrete.String(), strings.Join(args, ", "))
			owner.e.printf("%s}\n", indent)
		}
		return name
	}

	next := append(append([]*frame{}, frames...), &frame{scope: pti.Scope, e: owner.e, region: owner.region, depth: owner.depth})
	args := make([]string, 0, len(pti.Instantiable.Properties))
	for _, prop := range pti.Instantiable.Properties {
		args = append(args, fmt.Sprintf("%s: %s", prop.Name, r.valueFor(prop, next)))
	}
	name := owner.region.bind(key, concrete)
	owner.e.printf("%slet %s = %s(%s)\n", indent, name, concrete.String(), strings.Join(args, ", "))
	return name
}

// lowerFirst lowers the leading uppercase run of an identifier so that
// "Service" becomes "service", "API" becomes "api", and "URLSession" becomes
// "urlSession"
func lowerFirst(s string) string {
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return s
	case upper == len(runes):
		return strings.ToLower(s)
	case upper == 1:
		return strings.ToLower(string(runes[:1])) + string(runes[1:])
	default:
		// Leading acronym followed by a word keeps its final capital.
		return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
	}
}

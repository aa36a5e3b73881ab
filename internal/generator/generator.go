package generator

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/registry"
)

const generatedFileHeader = `// Code generated by safedi. DO NOT EDIT.
// This file was automatically generated and should not be modified manually.

`

const emptyTreePlaceholder = "// No component requires a generated initializer.\n"

// defaultUIModules are appended to every artifact's import list
var defaultUIModules = []string{"SwiftUI", "UIKit"}

// Generator compiles a registry of declared components into a single Swift
// source artifact containing one initializer extension per dependency-tree
// root. The registry is read-only for the lifetime of the generator; nothing
// persists between runs.
type Generator struct {
	registry    *registry.InstantiableRegistry
	moduleNames []string
	uiModules   []string
}

// NewGenerator creates a generator for the given registry and caller-supplied
// import module names
func NewGenerator(reg *registry.InstantiableRegistry, moduleNames []string) *Generator {
	return NewGeneratorWithUIModules(reg, moduleNames, defaultUIModules)
}

// NewGeneratorWithUIModules creates a generator with a custom set of
// unconditionally imported UI modules
func NewGeneratorWithUIModules(reg *registry.InstantiableRegistry, moduleNames, uiModules []string) *Generator {
	return &Generator{
		registry:    reg,
		moduleNames: moduleNames,
		uiModules:   uiModules,
	}
}

// Generate resolves the dependency tree, validates it, and renders the
// artifact. Output is byte-for-byte deterministic for identical input. Any
// validation failure blocks generation entirely; no partial artifact is
// produced.
func (g *Generator) Generate() (string, error) {
	roots, reachable, err := rootInstantiables(g.registry)
	if err != nil {
		return "", err
	}

	scopes, err := buildScopeMap(reachable)
	if err != nil {
		return "", err
	}

	rootScopes := make([]*Scope, 0, len(roots))
	for _, root := range roots {
		scope, ok := scopes[root.ConcreteType.String()]
		if !ok {
			return "", errors.NewInternalError("no scope for root type '%s'", root.ConcreteType.String())
		}
		rootScopes = append(rootScopes, scope)
	}

	if err := validateReceivedProperties(rootScopes); err != nil {
		return "", err
	}

	// Root subtrees share no mutable state once the scope map is built, so
	// each fragment is rendered on its own goroutine.
	fragments := make([]string, len(rootScopes))
	var eg errgroup.Group
	for i, scope := range rootScopes {
		i, scope := i, scope
		eg.Go(func() error {
			fragments[i] = renderRootExtension(scope)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	var rendered []string
	for _, fragment := range fragments {
		if fragment != "" {
			rendered = append(rendered, fragment)
		}
	}
	// Fragments are ordered by their generated text, never by completion
	// order, so parallelism cannot leak into the artifact.
	sort.Strings(rendered)

	var b strings.Builder
	b.WriteString(generatedFileHeader)
	for _, module := range g.importList() {
		b.WriteString("import " + module + "\n")
	}
	b.WriteString("\n")
	if len(rendered) == 0 {
		b.WriteString(emptyTreePlaceholder)
	} else {
		b.WriteString(strings.Join(rendered, "\n"))
	}
	return b.String(), nil
}

// importList returns the sorted, de-duplicated union of the caller-supplied
// modules and the fixed UI modules
func (g *Generator) importList() []string {
	seen := make(map[string]bool)
	var modules []string
	for _, m := range append(append([]string{}, g.moduleNames...), g.uiModules...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		modules = append(modules, m)
	}
	sort.Strings(modules)
	return modules
}

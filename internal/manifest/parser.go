package manifest

import (
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/models"
)

// Manifest is the structured result of parsing one .safedi file: the module
// names its generated code must import and the components it declares
type Manifest struct {
	Modules       []string
	Instantiables []*models.Instantiable
}

// Parser parses .safedi manifest files into component descriptors
type Parser struct {
	parser *participle.Parser[manifestAST]
}

// NewParser builds the manifest grammar
func NewParser() *Parser {
	return &Parser{
		parser: participle.MustBuild[manifestAST](
			participle.Lexer(manifestLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		),
	}
}

// ParseFile reads and parses a manifest file from disk
func (p *Parser) ParseFile(path string) (*Manifest, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return p.Parse(path, string(source))
}

// Parse parses manifest source. Structural faults in component declarations
// (duplicate properties, a second forwarded property, duplicate fulfilled
// types) are rejected here, before the engine ever sees the descriptors.
func (p *Parser) Parse(filename, source string) (*Manifest, error) {
	ast, err := p.parser.ParseString(filename, source)
	if err != nil {
		loc := errors.SourceLocation{File: filename}
		if perr, ok := err.(participle.Error); ok {
			loc.Line = perr.Position().Line
			loc.Column = perr.Position().Column
		}
		return nil, errors.NewSyntaxError(loc, "invalid manifest syntax: "+err.Error(), err)
	}

	manifest := &Manifest{}
	for _, entry := range ast.Entries {
		switch {
		case entry.Import != nil:
			manifest.Modules = append(manifest.Modules, entry.Import.Module)
		case entry.Component != nil:
			inst, err := buildInstantiable(filename, entry.Component)
			if err != nil {
				return nil, err
			}
			manifest.Instantiables = append(manifest.Instantiables, inst)
		}
	}
	return manifest, nil
}

// buildInstantiable converts one component declaration into a descriptor,
// enforcing the structural invariants the engine assumes
func buildInstantiable(filename string, decl *componentAST) (*models.Instantiable, error) {
	inst := &models.Instantiable{
		ConcreteType:    decl.Type.description(),
		IsReferenceType: decl.Reference,
		File:            filename,
		Line:            decl.Pos.Line,
	}

	fulfilled := map[string]bool{inst.ConcreteType.String(): true}
	for _, t := range decl.Fulfills {
		desc := t.description()
		if fulfilled[desc.String()] {
			return nil, errors.NewStructuralError(
				errors.SourceLocation{File: filename, Line: decl.Pos.Line},
				"component '%s' declares fulfilled type '%s' more than once",
				inst.ConcreteType.String(), desc.String(),
			)
		}
		fulfilled[desc.String()] = true
		inst.AdditionalTypes = append(inst.AdditionalTypes, desc)
	}

	names := make(map[string]bool)
	forwardedSeen := false
	for _, member := range decl.Members {
		source, ok := member.source()
		if !ok {
			return nil, errors.NewStructuralError(
				errors.SourceLocation{File: filename, Line: member.Pos.Line},
				"unknown property kind '%s'", member.Kind,
			)
		}
		if names[member.Name] {
			return nil, errors.NewStructuralError(
				errors.SourceLocation{File: filename, Line: member.Pos.Line},
				"component '%s' declares property '%s' more than once",
				inst.ConcreteType.String(), member.Name,
			)
		}
		names[member.Name] = true

		if source == models.SourceForwarded {
			if forwardedSeen {
				return nil, errors.NewStructuralError(
					errors.SourceLocation{File: filename, Line: member.Pos.Line},
					"component '%s' declares more than one forwarded property; at most one is allowed",
					inst.ConcreteType.String(),
				)
			}
			forwardedSeen = true
		}

		inst.Properties = append(inst.Properties, models.Property{
			Name:   member.Name,
			Type:   member.Type.description(),
			Source: source,
		})
	}
	return inst, nil
}

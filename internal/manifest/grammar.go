package manifest

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/adam-zethraeus/safedi/internal/models"
)

// manifestLexer tokenizes .safedi manifest files
var manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "Punct", Pattern: `[{}<>:,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// manifestAST is the participle root for one manifest file
type manifestAST struct {
	Entries []*entryAST `parser:"@@*"`
}

type entryAST struct {
	Import    *importAST    `parser:"@@"`
	Component *componentAST `parser:"| @@"`
}

type importAST struct {
	Module string `parser:"'import' @Ident"`
}

type componentAST struct {
	Pos       lexer.Position
	Reference bool         `parser:"@'reference'?"`
	Type      *typeAST     `parser:"'component' @@"`
	Fulfills  []*typeAST   `parser:"('fulfills' @@ (',' @@)*)?"`
	Members   []*memberAST `parser:"'{' @@* '}'"`
}

type memberAST struct {
	Pos  lexer.Position
	Kind string   `parser:"@('instantiated' | 'lazy' | 'received' | 'forwarded')"`
	Name string   `parser:"@Ident ':'"`
	Type *typeAST `parser:"@@"`
}

type typeAST struct {
	Existential bool       `parser:"@'any'?"`
	Name        string     `parser:"@Ident"`
	Args        []*typeAST `parser:"('<' @@ (',' @@)* '>')?"`
}

// description converts a parsed type into its canonical model form
func (t *typeAST) description() models.TypeDescription {
	desc := models.TypeDescription{
		Name:        t.Name,
		Existential: t.Existential,
	}
	for _, arg := range t.Args {
		desc.GenericArgs = append(desc.GenericArgs, arg.description())
	}
	return desc
}

// source maps a member kind keyword to its property source
func (m *memberAST) source() (models.PropertySource, bool) {
	switch strings.TrimSpace(m.Kind) {
	case "instantiated":
		return models.SourceInstantiated, true
	case "lazy":
		return models.SourceLazyInstantiated, true
	case "received":
		return models.SourceReceived, true
	case "forwarded":
		return models.SourceForwarded, true
	default:
		return 0, false
	}
}

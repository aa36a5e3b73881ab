package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/adam-zethraeus/safedi/internal/errors"
	"github.com/adam-zethraeus/safedi/internal/generator"
	"github.com/adam-zethraeus/safedi/internal/manifest"
	"github.com/adam-zethraeus/safedi/internal/registry"
)

// Generator coordinates the CLI generation process: scan manifests, parse
// them into component descriptors, resolve the dependency tree, and write
// the generated artifact
type Generator struct {
	scanner  *ManifestScanner
	parser   *manifest.Parser
	reporter *DiagnosticReporter
	config   Config
	summary  GenerationSummary
}

// GenerationSummary captures what one run produced
type GenerationSummary struct {
	ManifestFiles int
	Components    int
	OutputPath    string
	Duration      time.Duration
}

// NewGenerator creates a new CLI generator
func NewGenerator(config Config) *Generator {
	return &Generator{
		scanner:  NewManifestScanner(),
		parser:   manifest.NewParser(),
		reporter: NewDiagnosticReporter(config.Verbose),
		config:   config,
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run() error {
	startTime := time.Now()
	g.summary = GenerationSummary{OutputPath: g.config.Output}

	if g.config.Verbose && !g.config.Quiet {
		fmt.Printf("Scanning for manifests in: %v\n", g.config.Paths)
	}

	manifests, err := g.scanner.Scan(g.config.Paths)
	if err != nil {
		g.reporter.ReportError(err)
		return err
	}
	if len(manifests) == 0 {
		err := errors.NewStructuralError(errors.SourceLocation{},
			"no .safedi manifest files found in %v", g.config.Paths)
		g.reporter.ReportError(err.WithSuggestions(
			"check that the paths contain .safedi files",
			"pass manifest files or their parent directories as arguments",
		))
		return err
	}
	g.summary.ManifestFiles = len(manifests)

	reg := registry.NewInstantiableRegistry()
	modules := append([]string{}, g.config.Modules...)
	for _, path := range manifests {
		if g.config.Verbose && !g.config.Quiet {
			fmt.Printf("Parsing %s\n", path)
		}
		parsed, err := g.parser.ParseFile(path)
		if err != nil {
			g.reporter.ReportError(err)
			return err
		}
		modules = append(modules, parsed.Modules...)
		for _, inst := range parsed.Instantiables {
			if err := reg.Register(inst); err != nil {
				g.reporter.ReportError(err)
				return err
			}
		}
	}
	g.summary.Components = reg.Len()

	output, err := generator.NewGenerator(reg, modules).Generate()
	if err != nil {
		g.reporter.ReportError(err)
		return err
	}

	if err := os.WriteFile(g.config.Output, []byte(output), 0644); err != nil {
		wrapped := errors.WrapFileSystemError("write", g.config.Output, err)
		g.reporter.ReportError(wrapped)
		return wrapped
	}

	g.summary.Duration = time.Since(startTime)
	if !g.config.Quiet {
		g.reporter.ReportSuccess("Generated %s from %d manifest file(s), %d component(s) in %s",
			g.config.Output, g.summary.ManifestFiles, g.summary.Components,
			g.summary.Duration.Round(time.Millisecond))
	}
	return nil
}

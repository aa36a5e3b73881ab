package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerator_Run_EndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "app.safedi", `import App

component Root {
    instantiated child: Service
}

component Service {
}
`)

	output := filepath.Join(tempDir, "SafeDI.generated.swift")
	generator := NewGenerator(Config{
		Paths:  []string{tempDir},
		Output: output,
		Quiet:  true,
	})
	require.NoError(t, generator.Run())

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	expected := `// Code generated by safedi. DO NOT EDIT.
// This file was automatically generated and should not be modified manually.

import App
import SwiftUI
import UIKit

extension Root {
    init() {
        let service = Service()
        self.init(child: service)
    }
}
`
	assert.Equal(t, expected, string(content))

	summary := generator.GetSummary()
	assert.Equal(t, 1, summary.ManifestFiles)
	assert.Equal(t, 2, summary.Components)
	assert.Equal(t, output, summary.OutputPath)
}

func TestGenerator_Run_MergesManifestsAndConfigModules(t *testing.T) {
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "a.safedi", "import Alpha\n\ncomponent Standalone {\n}\n")
	writeManifest(t, tempDir, "b.safedi", "import Beta\n")

	output := filepath.Join(tempDir, "out.swift")
	generator := NewGenerator(Config{
		Paths:   []string{tempDir},
		Output:  output,
		Modules: []string{"Extra"},
		Quiet:   true,
	})
	require.NoError(t, generator.Run())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "import Alpha\nimport Beta\nimport Extra\nimport SwiftUI\nimport UIKit\n")
	assert.Contains(t, string(content), "// No component requires a generated initializer.")
}

func TestGenerator_Run_NoManifestsFails(t *testing.T) {
	tempDir := t.TempDir()
	generator := NewGenerator(Config{
		Paths:  []string{tempDir},
		Output: filepath.Join(tempDir, "out.swift"),
		Quiet:  true,
	})
	err := generator.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .safedi manifest files found")
}

func TestGenerator_Run_ValidationFailureWritesNothing(t *testing.T) {
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "app.safedi", `component Root {
    instantiated leaf: Leaf
}

component Leaf {
    received token: Token
}

component Token {
}
`)

	output := filepath.Join(tempDir, "out.swift")
	generator := NewGenerator(Config{
		Paths:  []string{tempDir},
		Output: output,
		Quiet:  true,
	})
	err := generator.Run()
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no partial artifact may be written on validation failure")
}

func TestLoadConfig_EnvironmentDefaults(t *testing.T) {
	t.Setenv("SAFEDI_OUTPUT", "Custom.swift")
	t.Setenv("SAFEDI_MODULES", "App,CoreKit")
	t.Setenv("SAFEDI_VERBOSE", "true")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Custom.swift", config.Output)
	assert.Equal(t, []string{"App", "CoreKit"}, config.Modules)
	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
}

func TestLoadConfig_DefaultOutput(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "SafeDI.generated.swift", config.Output)
}

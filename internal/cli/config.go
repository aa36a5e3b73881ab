package cli

import (
	"github.com/caarlos0/env/v11"

	"github.com/adam-zethraeus/safedi/internal/errors"
)

// Config holds the configuration for the CLI generator. Environment
// variables provide defaults; command-line flags override them.
type Config struct {
	// Paths is the list of files or directories to scan for .safedi manifests
	Paths []string `env:"-"`

	// Output is the path the generated Swift artifact is written to
	Output string `env:"SAFEDI_OUTPUT" envDefault:"SafeDI.generated.swift"`

	// Modules is appended to the import modules collected from manifests
	Modules []string `env:"SAFEDI_MODULES" envSeparator:","`

	// Verbose enables detailed logging and error reporting
	Verbose bool `env:"SAFEDI_VERBOSE"`

	// Quiet suppresses everything but errors and the final result
	Quiet bool `env:"SAFEDI_QUIET"`
}

// LoadConfig reads configuration defaults from the environment
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, errors.WrapConfigurationError(err)
	}
	return config, nil
}

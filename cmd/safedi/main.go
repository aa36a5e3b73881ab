package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adam-zethraeus/safedi/internal/cli"
)

func main() {
	var (
		outputFlag  = flag.String("output", "", "Path for the generated Swift file (default SafeDI.generated.swift, or SAFEDI_OUTPUT)")
		modulesFlag = flag.String("modules", "", "Comma-separated module names to import in addition to manifest imports")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "SafeDI Dependency Tree Compiler\n")
		fmt.Fprintf(os.Stderr, "Scans the given files and directories for .safedi component manifests,\n")
		fmt.Fprintf(os.Stderr, "resolves the dependency tree, and generates initializer extensions.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  paths    One or more .safedi files or directories to scan recursively\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  SAFEDI_OUTPUT    Default output path\n")
		fmt.Fprintf(os.Stderr, "  SAFEDI_MODULES   Default comma-separated extra import modules\n")
		fmt.Fprintf(os.Stderr, "  SAFEDI_VERBOSE   Default for --verbose\n")
		fmt.Fprintf(os.Stderr, "  SAFEDI_QUIET     Default for --quiet\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./Sources                          # Scan a directory tree\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --output DI.swift app.safedi       # Compile a single manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --modules App,CoreKit ./manifests  # Add import modules\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one manifest file or directory is required\n\n")
		flag.Usage()
		os.Exit(2)
	}

	config, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	config.Paths = args
	if *outputFlag != "" {
		config.Output = *outputFlag
	}
	if modules := splitModules(*modulesFlag); len(modules) > 0 {
		config.Modules = append(config.Modules, modules...)
	}
	if *verboseFlag {
		config.Verbose = true
	}
	if *quietFlag {
		config.Quiet = true
	}

	if err := cli.NewGenerator(config).Run(); err != nil {
		os.Exit(1)
	}
}

// splitModules parses a comma-separated module list, dropping empty entries
func splitModules(value string) []string {
	var modules []string
	for _, module := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(module); trimmed != "" {
			modules = append(modules, trimmed)
		}
	}
	return modules
}

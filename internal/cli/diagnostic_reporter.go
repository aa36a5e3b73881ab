package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/adam-zethraeus/safedi/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting for the CLI
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
	}
}

// ReportWarning prints a warning with a highlighted marker
func (r *DiagnosticReporter) ReportWarning(message string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(os.Stderr, "! ")
	fmt.Fprintf(os.Stderr, "%s\n", message)
}

// ReportSuccess prints a success line
func (r *DiagnosticReporter) ReportSuccess(format string, args ...any) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(os.Stdout, "✓ ")
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// ReportError provides comprehensive error reporting with suggestions when
// the error carries them
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(os.Stderr, "ERROR: ")
	fmt.Fprintf(os.Stderr, "Code Generation Failed\n\n")

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		r.reportValidationError(validationErr)
		return
	}

	var genErr *errors.GeneratorError
	if stderrors.As(err, &genErr) {
		r.reportGeneratorError(genErr)
		return
	}

	fmt.Fprintf(os.Stderr, "%s\n", err.Error())
}

// reportGeneratorError reports a GeneratorError with location and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr *errors.GeneratorError) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", genErr.Code.String(), genErr.Message)

	if !genErr.Loc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Location: %s\n", genErr.Loc.String())
	}

	if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(os.Stderr, "Underlying cause: %s\n", genErr.Cause.Error())
	}

	if len(genErr.Suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\nSuggestions:\n")
		for _, suggestion := range genErr.Suggestions {
			fmt.Fprintf(os.Stderr, "  - %s\n", suggestion)
		}
	}
}

// reportValidationError lists every unfulfilled received property with its
// instantiation chain
func (r *DiagnosticReporter) reportValidationError(validationErr *errors.ValidationError) {
	fmt.Fprintf(os.Stderr, "[%s] %d received propert%s could not be fulfilled:\n",
		errors.ReceivedPropertyErrorCode.String(),
		len(validationErr.Violations),
		pluralSuffix(len(validationErr.Violations)))

	for _, violation := range validationErr.Violations {
		fmt.Fprintf(os.Stderr, "  - %s\n", violation.String())
	}

	fmt.Fprintf(os.Stderr, "\nSuggestions:\n")
	fmt.Fprintf(os.Stderr, "  - declare a matching instantiated, lazy, or forwarded property on an ancestor component\n")
	fmt.Fprintf(os.Stderr, "  - check that the property name and type match the ancestor declaration exactly\n")
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

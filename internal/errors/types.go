package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	// Core error types
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	StructuralErrorCode
	RegistrationErrorCode

	// Engine error types
	UnresolvableTypeErrorCode
	ReceivedPropertyErrorCode
	InternalErrorCode

	// Tooling error types
	ConfigurationErrorCode
	FileSystemErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case StructuralErrorCode:
		return "StructuralError"
	case RegistrationErrorCode:
		return "RegistrationError"
	case UnresolvableTypeErrorCode:
		return "UnresolvableTypeError"
	case ReceivedPropertyErrorCode:
		return "ReceivedPropertyError"
	case InternalErrorCode:
		return "InternalError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	case FileSystemErrorCode:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// SourceLocation represents where an error occurred in a manifest file
type SourceLocation struct {
	File   string // file path where the error occurred
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// String returns a formatted string representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	if s.Line == 0 {
		return s.File
	}
	if s.Column == 0 {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// IsEmpty returns true if the location has no useful information
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// GeneratorError is the common error type surfaced by the manifest front-end
// and the dependency-tree engine
type GeneratorError struct {
	Code        ErrorCode      // type of error
	Message     string         // error message
	Loc         SourceLocation // where the error occurred
	Cause       error          // underlying error cause
	Suggestions []string       // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.Loc.IsEmpty() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc.String(), e.Message)
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// WithSuggestions attaches fix-it suggestions and returns the error for chaining
func (e *GeneratorError) WithSuggestions(suggestions ...string) *GeneratorError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// PropertyViolation records one received property that no ancestor supplies,
// together with the instantiation chain from the root to the offending
// component
type PropertyViolation struct {
	Property string   // rendered as "name: Type"
	Chain    []string // component type spellings, root first
}

// String renders the violation with its full ancestor chain
func (v PropertyViolation) String() string {
	return fmt.Sprintf("property '%s' is not fulfilled by any ancestor of %s",
		v.Property, strings.Join(v.Chain, " -> "))
}

// ValidationError aggregates every received-property violation found across
// the whole dependency tree. Validation collects all violations before
// failing so a single run reports every problem.
type ValidationError struct {
	Violations []PropertyViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d received propert", len(e.Violations)))
	if len(e.Violations) == 1 {
		b.WriteString("y is")
	} else {
		b.WriteString("ies are")
	}
	b.WriteString(" never fulfilled:")
	for _, v := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

package errors

import "fmt"

// NewSyntaxError creates a manifest syntax error at the given location
func NewSyntaxError(loc SourceLocation, message string, cause error) *GeneratorError {
	return &GeneratorError{
		Code:    SyntaxErrorCode,
		Message: message,
		Loc:     loc,
		Cause:   cause,
	}
}

// NewStructuralError creates an error for a malformed component declaration,
// e.g. a second forwarded property or a duplicate property name
func NewStructuralError(loc SourceLocation, format string, args ...any) *GeneratorError {
	return &GeneratorError{
		Code:    StructuralErrorCode,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// NewRegistrationError creates an error for two components fulfilling the
// same type identity
func NewRegistrationError(typeName string, loc, existing SourceLocation) *GeneratorError {
	return (&GeneratorError{
		Code:    RegistrationErrorCode,
		Message: fmt.Sprintf("type '%s' is already fulfilled by the component declared at %s", typeName, existing.String()),
		Loc:     loc,
	}).WithSuggestions(
		fmt.Sprintf("remove '%s' from one of the two declarations", typeName),
	)
}

// NewUnresolvableTypeError creates the fatal error for a reachable dependency
// with no registered fulfiller
func NewUnresolvableTypeError(typeName, requestedBy string) *GeneratorError {
	return (&GeneratorError{
		Code:    UnresolvableTypeErrorCode,
		Message: fmt.Sprintf("no instantiable found for type '%s' (required by '%s')", typeName, requestedBy),
	}).WithSuggestions(
		fmt.Sprintf("declare a component that is or fulfills '%s'", typeName),
	)
}

// NewInternalError creates an error for an internal-consistency fault that
// indicates a bug in the engine rather than a problem with the input
func NewInternalError(format string, args ...any) *GeneratorError {
	return &GeneratorError{
		Code:    InternalErrorCode,
		Message: "internal fault: " + fmt.Sprintf(format, args...),
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *GeneratorError {
	return &GeneratorError{
		Code:    FileSystemErrorCode,
		Message: fmt.Sprintf("failed to %s '%s'", operation, path),
		Cause:   cause,
	}
}

// WrapConfigurationError wraps configuration loading errors
func WrapConfigurationError(cause error) *GeneratorError {
	return &GeneratorError{
		Code:    ConfigurationErrorCode,
		Message: "failed to load configuration from environment",
		Cause:   cause,
	}
}

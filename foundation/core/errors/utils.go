// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and constructors that stamp module and
//              operation onto textkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: Codes come from the error package; constructors for
//                      text processing failures

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers recorded in error details
const (
	ModuleCharx    = "charx"
	ModuleStringx  = "stringx"
	ModulePatternx = "patternx"
	ModuleBytex    = "bytex"
	ModuleConfig   = "config"
	ModuleAnchor   = "anchor"
	ModuleProfile  = "profile"
	ModuleCLI      = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	hasSev    bool
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.hasSev = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. Without a code the error is CodeInternal;
// without a message it reads "<module>.<operation> failed".
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeInternal
	}
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}
	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	if eb.hasSev {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidInput creates an error for input a command cannot process
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates an error for a malformed value
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s: expected %s", module, expectedFormat).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// InputTooLarge creates an error for input beyond a configured limit
func InputTooLarge(module, operation string, size, limit int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("input of %d runes exceeds limit of %d", size, limit).
		Code(mdwerror.CodeInputTooLarge).
		Detail("size", size).
		Detail("limit", limit).
		Build()
}

// NotFound creates an error for a missing file or resource
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// IOFailed wraps a read or write failure
func IOFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(mdwerror.CodeIOError).
		Build()
}

// ExtractModule returns the module recorded on the first textkit error in
// the chain, or "" when there is none.
func ExtractModule(err error) string {
	if e := asError(err); e != nil {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation returns the operation of the first textkit error in the
// chain.
func ExtractOperation(err error) string {
	if e := asError(err); e != nil {
		return e.Operation()
	}
	return ""
}

// IsModuleOperation reports whether err was raised by module.operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

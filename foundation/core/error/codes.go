// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used by the textkit libraries and command line
//              tool, with categories and process exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to text processing codes, exit codes replace HTTP status

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Input handling
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Files and streams
	CodeNotFound Code = "NOT_FOUND"
	CodeIOError  Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Exit codes returned by the command line tool per category.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitConfig   = 3
	ExitIOFailed = 4
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeInvalidFormat, CodeInputTooLarge,
		CodeNotFound, CodeIOError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeInputTooLarge:
		return "input"
	case CodeNotFound, CodeIOError:
		return "io"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return ExitUsage
	case "configuration":
		return ExitConfig
	case "io":
		return ExitIOFailed
	default:
		return ExitFailure
	}
}

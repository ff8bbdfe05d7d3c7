// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity derivation for text processing codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks bad input the caller can correct.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code.
	SeverityMedium

	// SeverityHigh marks failures of the environment: files, configuration.
	SeverityHigh

	// SeverityCritical marks internal faults.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be logged at error level
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIOError, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidFormat, CodeInputTooLarge, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// Package errors provides the shared error constructors and error digests
// used by textkit modules and the command line tool.
//
// Package: errors
// Title: Error Construction and Digests
// Description: A fluent builder that stamps module and operation onto
//              textkit errors, constructors for the common failure kinds,
//              and renderers that turn any error into a full trace or a
//              one-line summary.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Digests, codes moved to the error package
//
// # Building errors
//
//	err := errors.NewErrorBuilder(errors.ModuleCLI).
//		Operation("lcs").
//		Message("input exceeds limit").
//		Code(mdwerror.CodeInputTooLarge).
//		Detail("limit", 4096).
//		Build()
//
// Shortcuts exist for the common cases: InvalidInput, InvalidFormat,
// InputTooLarge, NotFound and IOFailed.
//
// # Digests
//
// FullTrace prints every layer of a chain with its frames, the way a stack
// dump reads. ShortSummary keeps at most two lines of the message and marks
// dropped lines with " ...":
//
//	errors.ShortSummary(fmt.Errorf("a\nb\nc")) // "a\tb ..."
package errors

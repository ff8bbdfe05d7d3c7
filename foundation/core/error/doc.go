// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Type
// Description: Errors carry a code, a severity, key/value details, the
//              failing operation and the stack captured at creation. The
//              digest helpers in foundation/core/errors render them as full
//              traces or one-line summaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Text processing codes, run ids, frame formatting
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("input exceeds limit").
//		WithCode(mdwerror.CodeInputTooLarge).
//		WithDetail("runes", n).
//		WithOperation("lcs")
//
//	wrapped := mdwerror.Wrap(err, "match failed")
//	if mdwerror.HasCode(wrapped, mdwerror.CodeInputTooLarge) {
//		os.Exit(mdwerror.GetCode(wrapped).ExitCode())
//	}
package error

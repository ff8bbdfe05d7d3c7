// File: digest.go
// Title: Error Digests
// Description: Multi-line traces and one-line summaries of errors for
//              logs and terminal output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Ellipsis marks a summary that dropped lines.
const Ellipsis = " ..."

// FullTrace renders every layer of err. Each textkit layer prints as
// "<CODE>: <message>" followed by its captured frames; causes are
// introduced by "Caused by: ". Other errors print with %+v. nil yields "".
func FullTrace(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	for cur, first := err, true; cur != nil; first = false {
		if !first {
			b.WriteString("Caused by: ")
		}
		e, ok := cur.(*mdwerror.Error)
		if !ok {
			fmt.Fprintf(&b, "%+v\n", cur)
			break
		}
		fmt.Fprintf(&b, "%s: %s\n", e.Code(), e.Message())
		for _, f := range e.StackTrace() {
			fmt.Fprintf(&b, "\tat %s(%s:%d)\n", f.Function, f.File, f.Line)
		}
		cur = e.Unwrap()
	}
	return b.String()
}

// ShortSummary condenses the message of err to at most two tab-joined
// lines, appending Ellipsis when more were dropped. Trailing empty lines do
// not count. An empty message falls back to the dynamic type of err.
func ShortSummary(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if msg == "" {
		msg = fmt.Sprintf("%T", err)
	}

	lines := strings.Split(msg, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	switch n := len(lines); {
	case n == 0:
		return ""
	case n == 1:
		return lines[0]
	case n == 2:
		return lines[0] + "\t" + lines[1]
	default:
		return lines[0] + "\t" + lines[1] + Ellipsis
	}
}

func asError(err error) *mdwerror.Error {
	var e *mdwerror.Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// ============================================================================
// textkit - Text Cleaning Toolkit
// ============================================================================
//
// Package:     logging
// Description: Logging of textkit errors with code, module and summary
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"github.com/rs/zerolog"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// LogError writes err at error level when its severity calls for an alert
// and at warn level otherwise. Code, module, operation and the one-line
// summary are attached as fields; the full trace only at debug level.
func LogError(logger zerolog.Logger, err error, msg string) {
	if err == nil {
		return
	}

	event := logger.Warn()
	if mdwerror.GetSeverity(err).ShouldAlert() {
		event = logger.Error()
	}

	event = event.
		Str("code", mdwerror.GetCode(err).String()).
		Str("summary", mdwerrors.ShortSummary(err))
	if module := mdwerrors.ExtractModule(err); module != "" {
		event = event.Str("module", module)
	}
	if op := mdwerrors.ExtractOperation(err); op != "" {
		event = event.Str("operation", op)
	}
	event.Msg(msg)

	logger.Debug().Str("trace", mdwerrors.FullTrace(err)).Msg("error trace")
}

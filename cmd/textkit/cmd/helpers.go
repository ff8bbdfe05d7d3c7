package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

func invalidFlag(cmd *cobra.Command, flag, value, expected string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Messagef("invalid value %q for --%s: expected %s", value, flag, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("flag", flag).
		Detail("value", value).
		Build()
}

func invalidArg(cmd *cobra.Command, value, expected string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Messagef("invalid argument %q: expected %s", value, expected).
		Code(mdwerror.CodeInvalidFormat).
		Detail("value", value).
		Build()
}

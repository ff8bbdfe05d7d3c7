package main

import (
	"os"

	"github.com/msto63/textkit/cmd/textkit/cmd"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}

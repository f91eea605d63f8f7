package main

import (
	"os"

	"github.com/sashavipro/Swipe/cmd/entrypoint/cmd"
	"github.com/sashavipro/Swipe/internal/bootstrap"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Cobra already printed the error; the exit code is the part the
		// supervisor reads.
		os.Exit(bootstrap.ExitCode(err))
	}
}

package main

import (
	"os"

	"github.com/firefly-engineering/checkenv/cmd"
	"github.com/firefly-engineering/checkenv/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}

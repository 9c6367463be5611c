package main

import (
	"os"

	"github.com/Dicklesworthstone/sam/internal/cli"
	"github.com/Dicklesworthstone/sam/internal/executor"
)

func main() {
	if err := cli.Execute(); err != nil {
		// An executor exit code passes through unchanged so sam is
		// transparent in pipelines; everything else exits 1.
		os.Exit(executor.ExitCode(err))
	}
}

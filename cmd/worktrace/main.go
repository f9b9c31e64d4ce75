package main

import (
	"os"

	"github.com/worktrace/worktrace/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

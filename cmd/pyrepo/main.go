package main

import (
	"os"

	"github.com/pyrepo/pyrepo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

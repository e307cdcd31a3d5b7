package main

import (
	"os"

	"github.com/sgdesh/bank-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

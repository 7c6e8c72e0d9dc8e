package main

import (
	"os"

	"github.com/venmorph/attestor-svc/internal/cli"
)

func main() {
	if !cli.Run(os.Args) {
		os.Exit(1)
	}
}

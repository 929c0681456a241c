package main

import (
	"os"

	"github.com/sorotlabs/sorot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

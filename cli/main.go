package main

import (
	"os"

	"github.com/duron27/plox/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

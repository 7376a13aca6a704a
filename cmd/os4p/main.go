// Command os4p runs deployment calculations from the command line.
package main

import (
	"os"

	"github.com/os4p/engine/cmd/os4p/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

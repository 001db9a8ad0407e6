package main

import (
	"os"

	"github.com/datasynth-io/shopsynth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

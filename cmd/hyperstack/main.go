package main

import (
	"os"

	"hyperstack/cmd/hyperstack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

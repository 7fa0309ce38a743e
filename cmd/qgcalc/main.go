package main

import (
	"os"

	"qgcalc/cmd/qgcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

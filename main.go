package main

import (
	"os"

	"github.com/inkdown-dev/inkdown/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

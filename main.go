package main

import (
	"os"

	"github.com/perfily/perfily-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

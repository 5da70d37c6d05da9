package main

import (
	"os"

	"github.com/momentum-ai/guidegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

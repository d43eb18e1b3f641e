package main

import (
	"os"

	"github.com/hamid/juzjourney/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

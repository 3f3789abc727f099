package main

import (
	"os"

	"github.com/edelooff/smallville/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

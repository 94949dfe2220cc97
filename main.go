package main

import (
	"os"

	"github.com/mathgeniusvn/mathgenius/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

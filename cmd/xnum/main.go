package main

import (
	"os"

	"github.com/govalues/xnum/cmd/xnum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

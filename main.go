package main

import (
	"os"

	"github.com/edcenter/mocktest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

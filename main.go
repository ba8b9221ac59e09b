package main

import (
	"os"

	"github.com/clbp/clbp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/abhisek/numerado/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

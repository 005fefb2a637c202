package main

import (
	"os"

	"github.com/slepotek/gridpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

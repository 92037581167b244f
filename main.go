package main

import (
	"os"

	"github.com/meera/lingodrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/jakoblorz/create-node-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

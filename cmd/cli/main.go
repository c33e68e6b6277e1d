package main

import (
	"os"

	"github.com/roomdesk/roomdesk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

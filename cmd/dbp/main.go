package main

import (
	"fmt"
	"os"

	"github.com/brokerguard/dbp/cmd/dbp/commands"
)

// Version information, set at build time
var version = "dev"

func main() {
	commands.SetVersion(version)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"iapstore/cmd/iapstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"laydeck/cmd/laydeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/su45/psim/cmd/psim/commands"
)

func main() {
	err := commands.GetRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

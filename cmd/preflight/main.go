package main

import (
	"github.com/allergyguard/preflight/cmd/preflight/commands"
)

func main() {
	commands.Execute()
}

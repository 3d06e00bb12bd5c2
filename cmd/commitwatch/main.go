package main

import (
	"github.com/MrLemur/commitwatch/internal/commands"
)

func main() {
	// Parse command line flags
	commands.ParseFlags()

	// Run the application
	commands.RunApplication()
}

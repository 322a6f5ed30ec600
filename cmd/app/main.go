package main

import (
	"os"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

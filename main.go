package main

import (
	"fmt"
	"os"

	"playermove/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "playermove:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/abhisek/mathtower/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.Silent(err) {
			fmt.Fprintln(os.Stderr, "mathtower:", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}

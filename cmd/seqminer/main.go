package main

import (
	"fmt"
	"os"

	"github.com/dnapatterns/patternminer/internal/cliapp"
)

func main() {
	if err := cliapp.App.Run(os.Args); err != nil {
		fmt.Println("Error running seqminer:", err)
		os.Exit(1)
	}
}

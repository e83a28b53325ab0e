package main

import (
	"fmt"
	"os"
)

func main() {
	if err := (&app{}).execute(nil, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "todoterm failed: %v\n", err)
		os.Exit(1)
	}
}

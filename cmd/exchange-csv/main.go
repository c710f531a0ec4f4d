// Package main provides the entry point for the exchange-csv CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/exchange-csv/cmd/root"
)

func main() {
	root.Init()
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

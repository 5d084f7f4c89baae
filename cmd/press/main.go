// Package main provides the press CLI tool for compressing and
// decompressing files with any of the built-in codec variants.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/version"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A CLI tool for inspecting triangle meshes",
	Long: `gomesh is a command-line tool for generating and analyzing triangle meshes.
It builds procedural primitives (plane, box, sphere) and reports their
geometric properties, attribute consistency, and memory footprint.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

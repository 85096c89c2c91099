// Package cmd provides the command-line interface for hyperstack: generating
// synthetic 6D microscopy datasets, validating and inspecting split-format
// files, and exporting frames as images.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hyperstack",
	Short: "A toolkit for 6D microscopy image stacks",
	Long: `Hyperstack works with dense 6-dimensional microscopy image stacks in the
TPZCYX axis order (time, position, z-depth, channel, height, width), stored
on disk as a YAML metadata file paired with a raw float32 payload.

Quick Start:
  hyperstack generate --pattern spots -o cells.meta   Generate a synthetic dataset
  hyperstack validate cells.meta                      Check it without loading the payload
  hyperstack inspect cells.meta                       Load it and print per-channel statistics
  hyperstack export cells.meta --all-times            Render its frames as PNG images`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

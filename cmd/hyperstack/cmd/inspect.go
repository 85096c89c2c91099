package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hyperstack/pkg/loader"
)

var inspectThreshold float64

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <dataset.meta>",
	Short: "Load a dataset and print shape, calibration, and channel statistics",
	Long: `Inspect validates a dataset, prints its shape and calibration from the
metadata artifact, then loads the full payload and prints per-channel frame
statistics for the first frame (T=0, P=0, Z=0).`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Float64Var(&inspectThreshold, "threshold", 1000,
		"saturation threshold for frame statistics")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := loader.Describe(path)
	if err != nil {
		return fmt.Errorf("failed to validate dataset: %w", err)
	}
	metaBytes, dataBytes, err := loader.FileSizes(path)
	if err != nil {
		return err
	}

	fmt.Printf("Dataset: %s\n", path)
	fmt.Printf("Dimensions (TxPxZxCxYxX): %s\n", info.Dimensions)
	fmt.Printf("Total elements: %d\n", info.Dimensions.TotalElements())
	fmt.Printf("Memory usage: %d MiB\n", info.MemoryUsageMB)
	fmt.Printf("Pixel size: %.3f um\n", info.PixelSizeUM)
	fmt.Printf("Time interval: %.1f s\n", info.TimeIntervalS)
	fmt.Printf("Data type: %s\n", info.DataType)
	fmt.Printf("On disk: %d metadata bytes, %d data bytes\n", metaBytes, dataBytes)

	fmt.Println("\nChannels:")
	for i, name := range info.ChannelNames {
		fmt.Printf("  %d: %s\n", i, name)
	}

	arr, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Println("\nFrame statistics (T=0, P=0, Z=0):")
	for c := 0; c < arr.Dimensions().Channel; c++ {
		stats, err := arr.GetFrameStats(0, 0, 0, c, inspectThreshold)
		if err != nil {
			return err
		}
		fmt.Printf("  Channel %d: min=%.1f, max=%.1f, mean=%.1f, std=%.1f, saturated=%d/%d\n",
			c, stats.Min, stats.Max, stats.Mean, stats.StdDev,
			stats.SaturatedPixels, stats.TotalPixels)
	}

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hyperstack/pkg/loader"
	"hyperstack/pkg/visualization"
)

var (
	exportTime     int
	exportPosition int
	exportZSlice   int
	exportChannel  int
	exportAllTimes bool
	exportOut      string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <dataset.meta>",
	Short: "Export frames as normalized 16-bit grayscale PNG images",
	Long: `Export renders one frame, or a whole time series at a fixed position,
z-slice, and channel, as 16-bit grayscale PNG images. Each frame is
normalized independently so its full intensity range maps onto the
display range.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&exportTime, "time", 0, "time index of the frame to export")
	exportCmd.Flags().IntVar(&exportPosition, "position", 0, "position index of the frame to export")
	exportCmd.Flags().IntVar(&exportZSlice, "z-slice", 0, "z-slice index of the frame to export")
	exportCmd.Flags().IntVar(&exportChannel, "channel", 0, "channel index of the frame to export")
	exportCmd.Flags().BoolVar(&exportAllTimes, "all-times", false, "export every time point instead of one frame")
	exportCmd.Flags().StringVar(&exportOut, "out", "frames", "output directory for PNG files")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	arr, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	viewer := visualization.NewViewer(arr)

	if exportAllTimes {
		if err := viewer.SaveTimeSeries(exportOut, exportPosition, exportZSlice, exportChannel); err != nil {
			return fmt.Errorf("failed to export time series: %w", err)
		}
		fmt.Printf("Exported %d frames to %s\n", arr.Dimensions().Time, exportOut)
		return nil
	}

	img, err := viewer.FrameImage(exportTime, exportPosition, exportZSlice, exportChannel)
	if err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	if err := os.MkdirAll(exportOut, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(exportOut, fmt.Sprintf("frame_t%03d_p%d_z%d_c%d.png",
		exportTime, exportPosition, exportZSlice, exportChannel))
	if err := viewer.SaveFrame(img, filename); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	fmt.Printf("Exported frame to %s\n", filename)

	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hyperstack/pkg/splitfmt"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <dataset.meta>",
	Short: "Check a dataset's artifacts without loading the payload",
	Long: `Validate parses the metadata artifact and checks that the data artifact
exists with exactly the byte size the dimensions require. The payload itself
is never read, so validation is cheap even for very large datasets.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	fmt.Printf("Validating dataset: %s\n", path)

	meta, err := splitfmt.Validate(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("File validation successful")
	fmt.Printf("  Dimensions: %s\n", meta.Dimensions)
	fmt.Printf("  Format version: %s\n", meta.FormatVersion)
	fmt.Printf("  Data type: %s\n", meta.DataType)

	return nil
}

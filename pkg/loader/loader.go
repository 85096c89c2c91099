// Package loader answers questions about split-format datasets on disk:
// what shape and calibration a file has, whether it is loadable at all, and
// frame-level statistics. Describe and IsDataset work from the metadata
// artifact alone, so callers can populate file browsers and summaries
// without paying for the payload. All operations are synchronous; callers
// that must not block schedule them on their own goroutines.
package loader

import (
	"fmt"
	"os"

	"hyperstack/pkg/splitfmt"
	"hyperstack/pkg/stack"
)

// DatasetInfo summarizes a dataset from its metadata artifact.
type DatasetInfo struct {
	FilePath      string
	Dimensions    stack.Dimensions
	PixelSizeUM   float64
	TimeIntervalS float64
	ChannelNames  []string
	DataType      string

	// MemoryUsageMB is the full-load buffer size in MiB, rounded down.
	MemoryUsageMB int
}

// Describe validates the dataset at path and returns its shape and
// calibration. The data artifact is statted for size consistency but never
// read, so describing a gigabyte-scale dataset costs the same as a small
// one.
func Describe(path string) (DatasetInfo, error) {
	meta, err := splitfmt.Validate(path)
	if err != nil {
		return DatasetInfo{}, err
	}

	return DatasetInfo{
		FilePath:      path,
		Dimensions:    meta.Dimensions,
		PixelSizeUM:   meta.PixelSizeUM,
		TimeIntervalS: meta.TimeIntervalS,
		ChannelNames:  meta.ChannelNames,
		DataType:      meta.DataType,
		MemoryUsageMB: meta.Dimensions.MemoryBytes() / (1024 * 1024),
	}, nil
}

// Load reads the complete dataset at path into memory.
func Load(path string) (*stack.Array, error) {
	return splitfmt.Load(path)
}

// FrameStatistics computes statistics for one frame of the dataset at path.
// The full payload is loaded to serve the request.
// TODO: decode only the addressed frame's byte range instead of the whole
// payload; the row-major layout makes the offset arithmetic trivial.
func FrameStatistics(path string, t, p, z, c int, saturationThreshold float64) (stack.FrameStats, error) {
	arr, err := splitfmt.Load(path)
	if err != nil {
		return stack.FrameStats{}, err
	}
	return arr.GetFrameStats(t, p, z, c, saturationThreshold)
}

// IsDataset reports whether path names a complete, size-consistent
// split-format dataset.
func IsDataset(path string) bool {
	_, err := splitfmt.Validate(path)
	return err == nil
}

// FileSizes returns the on-disk byte sizes of the metadata and data
// artifacts backing the dataset at path.
func FileSizes(path string) (metaBytes, dataBytes int64, err error) {
	metaInfo, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to stat metadata file: %v", err)
	}
	dataInfo, err := os.Stat(splitfmt.DataPath(path))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to stat data file: %v", err)
	}
	return metaInfo.Size(), dataInfo.Size(), nil
}

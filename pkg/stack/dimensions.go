// Package stack implements the in-memory container for dense 6-dimensional
// microscopy image stacks following the TPZCYX axis convention:
//   - T: time points
//   - P: stage positions
//   - Z: z-stack depth
//   - C: channels
//   - Y: height
//   - X: width
//
// Sample data is a single contiguous float32 buffer in row-major TPZCYX order
// with X varying fastest, so a 2D frame at fixed (T,P,Z,C) is a contiguous
// run of Height*Width samples.
package stack

import "fmt"

// MaxMemoryMiB is the ceiling on the estimated size of a single array buffer.
// Dimensions whose float32 buffer would exceed this fail validation.
const MaxMemoryMiB = 1024

// BytesPerSample is the size of one sample on disk and in memory.
const BytesPerSample = 4

// Dimensions describes the extent of each of the six axes in TPZCYX order.
// Values are constructed unconditionally; call Validate before sizing
// buffers. The yaml tags define the field names used by the split-format
// metadata sidecar.
type Dimensions struct {
	Time     int `yaml:"time"`     // T
	Position int `yaml:"position"` // P
	Z        int `yaml:"z"`        // Z
	Channel  int `yaml:"channel"`  // C
	Height   int `yaml:"height"`   // Y
	Width    int `yaml:"width"`    // X
}

// NewDimensions builds a Dimensions value in TPZCYX order.
func NewDimensions(t, p, z, c, height, width int) Dimensions {
	return Dimensions{
		Time:     t,
		Position: p,
		Z:        z,
		Channel:  c,
		Height:   height,
		Width:    width,
	}
}

// NewDimensions2D builds dimensions for a single z-plane (Z=1).
func NewDimensions2D(t, p, c, height, width int) Dimensions {
	return NewDimensions(t, p, 1, c, height, width)
}

// TotalElements returns the product of all six axis extents.
func (d Dimensions) TotalElements() int {
	return d.Time * d.Position * d.Z * d.Channel * d.Height * d.Width
}

// Shape returns the six extents in TPZCYX order.
func (d Dimensions) Shape() [6]int {
	return [6]int{d.Time, d.Position, d.Z, d.Channel, d.Height, d.Width}
}

// MemoryBytes returns the size of the float32 sample buffer described by d.
func (d Dimensions) MemoryBytes() int {
	return d.TotalElements() * BytesPerSample
}

// Validate checks that every axis has extent at least 1 and that the sample
// buffer stays under the memory ceiling. It returns a *DimensionError or
// *CapacityError and has no side effects; dimensions are never clamped.
func (d Dimensions) Validate() error {
	if d.Time < 1 || d.Position < 1 || d.Z < 1 ||
		d.Channel < 1 || d.Height < 1 || d.Width < 1 {
		return &DimensionError{Dims: d}
	}

	memoryMiB := d.MemoryBytes() / (1024 * 1024)
	if memoryMiB > MaxMemoryMiB {
		return &CapacityError{Dims: d, EstimatedMiB: memoryMiB, LimitMiB: MaxMemoryMiB}
	}

	return nil
}

// String renders the extents as "TxPxZxCxYxX".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%dx%dx%dx%d",
		d.Time, d.Position, d.Z, d.Channel, d.Height, d.Width)
}

package stack

import "fmt"

// DimensionError reports a Dimensions value with an axis below the minimum
// extent of 1. Zero-extent axes never clamp silently; construction helpers
// surface this error instead.
type DimensionError struct {
	// Dims is the offending dimensions value.
	Dims Dimensions
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("all dimensions must be at least 1, got %s", e.Dims)
}

// CapacityError reports a Dimensions value whose sample buffer would exceed
// the configured memory ceiling.
type CapacityError struct {
	// Dims is the offending dimensions value.
	Dims Dimensions

	// EstimatedMiB is the estimated buffer size in MiB.
	EstimatedMiB int

	// LimitMiB is the configured ceiling in MiB.
	LimitMiB int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("array would use %dMiB of memory, maximum is %dMiB",
		e.EstimatedMiB, e.LimitMiB)
}

// ShapeMismatchError reports a sample buffer whose length does not match the
// element count implied by the dimensions it was paired with.
type ShapeMismatchError struct {
	// Elements is the actual buffer length.
	Elements int

	// Expected is dims.TotalElements().
	Expected int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("buffer has %d elements, dimensions require %d",
		e.Elements, e.Expected)
}

// ChannelCountError reports a channel-name list whose length does not match
// the channel dimension.
type ChannelCountError struct {
	// Names is the number of channel names supplied.
	Names int

	// Channels is the channel dimension.
	Channels int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("number of channel names (%d) does not match channel dimension (%d)",
		e.Names, e.Channels)
}

// IndexOutOfBoundsError reports a frame index outside the valid range of its
// axis. Axis is one of "time", "position", "z", "channel".
type IndexOutOfBoundsError struct {
	// Axis is the name of the failing axis.
	Axis string

	// Index is the requested index.
	Index int

	// Extent is the axis extent; valid indices are 0..Extent-1.
	Extent int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s index %d out of bounds (max: %d)", e.Axis, e.Index, e.Extent-1)
}

// FrameShapeError reports a frame write whose source shape does not match the
// container's height and width.
type FrameShapeError struct {
	// GotHeight and GotWidth describe the supplied frame.
	GotHeight, GotWidth int

	// WantHeight and WantWidth describe the container's frame shape.
	WantHeight, WantWidth int
}

func (e *FrameShapeError) Error() string {
	return fmt.Sprintf("frame shape %dx%d does not match expected %dx%d",
		e.GotHeight, e.GotWidth, e.WantHeight, e.WantWidth)
}

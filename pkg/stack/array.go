package stack

// Array is a dense 6D container of float32 samples in TPZCYX order together
// with the acquisition metadata that travels with the samples. The buffer is
// a single contiguous slice, so any (T,P,Z,C) frame is a contiguous run of
// Height*Width values that can be viewed without copying.
type Array struct {
	dims          Dimensions
	data          []float32
	pixelSizeUM   float64
	timeIntervalS float64
	channelNames  []string
	dataType      string
}

// New wraps an existing sample buffer as an Array. The buffer is taken over
// by the container and must hold exactly dims.TotalElements() values in
// TPZCYX row-major order. channelNames must name every channel. It returns
// *DimensionError or *CapacityError for invalid dims, *ShapeMismatchError
// when the buffer length is wrong, and *ChannelCountError when the channel
// names do not line up.
func New(dims Dimensions, data []float32, pixelSizeUM, timeIntervalS float64, channelNames []string, dataType string) (*Array, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if len(data) != dims.TotalElements() {
		return nil, &ShapeMismatchError{Elements: len(data), Expected: dims.TotalElements()}
	}
	if len(channelNames) != dims.Channel {
		return nil, &ChannelCountError{Names: len(channelNames), Channels: dims.Channel}
	}
	names := make([]string, len(channelNames))
	copy(names, channelNames)
	return &Array{
		dims:          dims,
		data:          data,
		pixelSizeUM:   pixelSizeUM,
		timeIntervalS: timeIntervalS,
		channelNames:  names,
		dataType:      dataType,
	}, nil
}

// Zeros allocates a zero-filled Array for the given dimensions. Validation
// matches New.
func Zeros(dims Dimensions, pixelSizeUM, timeIntervalS float64, channelNames []string, dataType string) (*Array, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return New(dims, make([]float32, dims.TotalElements()), pixelSizeUM, timeIntervalS, channelNames, dataType)
}

// Dimensions returns the array's extents.
func (a *Array) Dimensions() Dimensions {
	return a.dims
}

// PixelSizeUM returns the lateral pixel size in micrometers.
func (a *Array) PixelSizeUM() float64 {
	return a.pixelSizeUM
}

// TimeIntervalS returns the interval between timepoints in seconds.
func (a *Array) TimeIntervalS() float64 {
	return a.timeIntervalS
}

// ChannelNames returns a copy of the channel names, index-aligned with the
// C axis.
func (a *Array) ChannelNames() []string {
	names := make([]string, len(a.channelNames))
	copy(names, a.channelNames)
	return names
}

// DataType returns the descriptive acquisition data type label, e.g.
// "uint16". It records the source format only; samples are always float32.
func (a *Array) DataType() string {
	return a.dataType
}

// Data returns the full sample buffer in TPZCYX row-major order. The slice
// aliases the container's storage; it is the caller's responsibility not to
// resize it.
func (a *Array) Data() []float32 {
	return a.data
}

// MemoryUsage reports the size of the sample buffer in bytes, for
// diagnostics and pre-flight size checks.
func (a *Array) MemoryUsage() int {
	return len(a.data) * BytesPerSample
}

// frameOffset returns the buffer index of the first sample of the frame at
// (t,p,z,c). Indices must already be validated.
func (a *Array) frameOffset(t, p, z, c int) int {
	return (((t*a.dims.Position+p)*a.dims.Z+z)*a.dims.Channel + c) * a.dims.Height * a.dims.Width
}

// checkIndex validates one frame coordinate per axis, reporting the first
// axis that is out of bounds.
func (a *Array) checkIndex(t, p, z, c int) error {
	if t < 0 || t >= a.dims.Time {
		return &IndexOutOfBoundsError{Axis: "time", Index: t, Extent: a.dims.Time}
	}
	if p < 0 || p >= a.dims.Position {
		return &IndexOutOfBoundsError{Axis: "position", Index: p, Extent: a.dims.Position}
	}
	if z < 0 || z >= a.dims.Z {
		return &IndexOutOfBoundsError{Axis: "z", Index: z, Extent: a.dims.Z}
	}
	if c < 0 || c >= a.dims.Channel {
		return &IndexOutOfBoundsError{Axis: "channel", Index: c, Extent: a.dims.Channel}
	}
	return nil
}

// GetFrame returns the Height x Width frame at (t,p,z,c) as a zero-copy
// view into the array's buffer. Writes through the view mutate the array.
// It returns *IndexOutOfBoundsError when any coordinate is outside its
// extent.
func (a *Array) GetFrame(t, p, z, c int) (Frame, error) {
	if err := a.checkIndex(t, p, z, c); err != nil {
		return Frame{}, err
	}
	off := a.frameOffset(t, p, z, c)
	n := a.dims.Height * a.dims.Width
	return Frame{
		vals:   a.data[off : off+n : off+n],
		height: a.dims.Height,
		width:  a.dims.Width,
	}, nil
}

// SetFrame copies the samples of frame into the array at (t,p,z,c). The
// frame must match the array's Height x Width; mismatches return
// *FrameShapeError, and out-of-range coordinates return
// *IndexOutOfBoundsError.
func (a *Array) SetFrame(t, p, z, c int, frame Frame) error {
	if frame.Height() != a.dims.Height || frame.Width() != a.dims.Width {
		return &FrameShapeError{
			GotHeight:  frame.Height(),
			GotWidth:   frame.Width(),
			WantHeight: a.dims.Height,
			WantWidth:  a.dims.Width,
		}
	}
	if err := a.checkIndex(t, p, z, c); err != nil {
		return err
	}
	off := a.frameOffset(t, p, z, c)
	copy(a.data[off:off+frame.Len()], frame.Values())
	return nil
}

// GetFrameStats computes descriptive statistics for the frame at (t,p,z,c)
// with the given saturation threshold. It returns *IndexOutOfBoundsError
// when any coordinate is outside its extent.
func (a *Array) GetFrameStats(t, p, z, c int, saturationThreshold float64) (FrameStats, error) {
	frame, err := a.GetFrame(t, p, z, c)
	if err != nil {
		return FrameStats{}, err
	}
	return ComputeFrameStats(frame, saturationThreshold), nil
}

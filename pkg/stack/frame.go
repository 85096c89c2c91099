package stack

import "fmt"

// Frame is a 2D view of Height x Width samples at a fixed (T,P,Z,C)
// coordinate. Views returned by Array.GetFrame alias the array's buffer, so
// reading a frame from a large array never copies sample data; the view is
// only valid for as long as the owning array is.
type Frame struct {
	vals   []float32
	height int
	width  int
}

// FrameOf wraps an existing sample slice as a height x width frame, for
// example to stage data for Array.SetFrame. It returns a
// *ShapeMismatchError when the slice length is not height*width.
func FrameOf(vals []float32, height, width int) (Frame, error) {
	if len(vals) != height*width {
		return Frame{}, &ShapeMismatchError{Elements: len(vals), Expected: height * width}
	}
	return Frame{vals: vals, height: height, width: width}, nil
}

// Height returns the number of rows in the frame.
func (f Frame) Height() int {
	return f.height
}

// Width returns the number of columns in the frame.
func (f Frame) Width() int {
	return f.width
}

// Len returns the number of samples in the frame.
func (f Frame) Len() int {
	return len(f.vals)
}

// At returns the sample at row y, column x. Indices outside the frame are a
// programming error and panic, matching slice indexing.
func (f Frame) At(y, x int) float32 {
	f.check(y, x)
	return f.vals[y*f.width+x]
}

// Set overwrites the sample at row y, column x. The write lands in the
// owning array's buffer when the frame was obtained from Array.GetFrame.
func (f Frame) Set(y, x int, v float32) {
	f.check(y, x)
	f.vals[y*f.width+x] = v
}

func (f Frame) check(y, x int) {
	if y < 0 || y >= f.height || x < 0 || x >= f.width {
		panic(fmt.Sprintf("stack: frame index (%d,%d) out of range for %dx%d frame",
			y, x, f.height, f.width))
	}
}

// Values returns the frame's samples in row-major order. The slice aliases
// the underlying buffer; callers that need an independent copy should use
// Clone.
func (f Frame) Values() []float32 {
	return f.vals
}

// Clone returns a frame backed by a fresh copy of the samples, detached from
// the owning array.
func (f Frame) Clone() Frame {
	vals := make([]float32, len(f.vals))
	copy(vals, f.vals)
	return Frame{vals: vals, height: f.height, width: f.width}
}

// Float64s returns the frame's samples widened to float64 in row-major
// order. Statistics are computed on this widened copy to bound accumulation
// error over large pixel counts.
func (f Frame) Float64s() []float64 {
	out := make([]float64, len(f.vals))
	for i, v := range f.vals {
		out[i] = float64(v)
	}
	return out
}

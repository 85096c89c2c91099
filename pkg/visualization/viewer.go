// Package visualization renders frames of a 6D stack as grayscale images,
// for inspecting generated or loaded datasets outside the engine.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"hyperstack/pkg/stack"
)

// Viewer renders frames of one array. It holds a borrowed reference; the
// array must outlive the viewer.
type Viewer struct {
	arr *stack.Array
}

// NewViewer creates a viewer over the given array.
func NewViewer(arr *stack.Array) *Viewer {
	return &Viewer{arr: arr}
}

// FrameImage renders the frame at (t,p,z,c) as a 16-bit grayscale image.
// Intensities are normalized linearly between the frame's minimum and
// maximum so the full dynamic range is visible regardless of the pattern's
// absolute scale; a flat frame renders black. Out-of-range indices fail with
// the container's *stack.IndexOutOfBoundsError.
func (v *Viewer) FrameImage(t, p, z, c int) (image.Image, error) {
	frame, err := v.arr.GetFrame(t, p, z, c)
	if err != nil {
		return nil, err
	}

	min, max := frameRange(frame)
	spread := max - min

	img := image.NewGray16(image.Rect(0, 0, frame.Width(), frame.Height()))
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			norm := 0.0
			if spread > 0 {
				norm = (float64(frame.At(y, x)) - min) / spread
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(norm * 65535.0)})
		}
	}
	return img, nil
}

// frameRange returns the minimum and maximum sample of a frame in float64.
// An empty frame reports (0, 0).
func frameRange(frame stack.Frame) (min, max float64) {
	vals := frame.Values()
	if len(vals) == 0 {
		return 0, 0
	}
	min, max = float64(vals[0]), float64(vals[0])
	for _, v := range vals[1:] {
		f := float64(v)
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return min, max
}

// SaveFrame saves a rendered frame as a PNG image.
func (v *Viewer) SaveFrame(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %v", err)
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveTimeSeries renders every timepoint at fixed (p,z,c) into outputDir,
// one PNG per timepoint named frame_tNNN_pP_zZ_cC.png.
func (v *Viewer) SaveTimeSeries(outputDir string, p, z, c int) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	dims := v.arr.Dimensions()
	for t := 0; t < dims.Time; t++ {
		img, err := v.FrameImage(t, p, z, c)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_t%03d_p%d_z%d_c%d.png", t, p, z, c))
		if err := v.SaveFrame(img, filename); err != nil {
			return err
		}
	}

	return nil
}

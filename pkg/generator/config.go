package generator

import (
	"fmt"

	"hyperstack/pkg/stack"
)

// Channel pairs a channel name with the pattern painted into it.
type Channel struct {
	Name    string
	Pattern Pattern
}

// Config describes one synthetic acquisition. Channels must hold exactly
// Dims.Channel entries; Generate rejects any other count.
type Config struct {
	Dims          stack.Dimensions
	PixelSizeUM   float64
	TimeIntervalS float64
	Channels      []Channel

	// DataType is the acquisition data-type label recorded in the array
	// metadata, e.g. "uint16". Samples are always float32.
	DataType string

	// BaseIntensity scales the structural patterns (gradient, circles,
	// spot backgrounds, sine offset).
	BaseIntensity float32

	// NoiseLevel is the half-width of the additive uniform noise applied
	// to every pixel of every pattern.
	NoiseLevel float32

	// Seed drives the additive-noise stream. Runs with equal
	// configurations produce identical arrays.
	Seed int64
}

// DefaultConfig returns a config for the given dimensions with one gradient
// channel followed by Gaussian-spot channels, matching a typical
// nucleus-plus-markers acquisition.
func DefaultConfig(dims stack.Dimensions) Config {
	channels := make([]Channel, dims.Channel)
	for i := range channels {
		var pattern Pattern = GaussianSpots{NumSpots: 3, Intensity: 500}
		if i == 0 {
			pattern = Gradient{}
		}
		channels[i] = Channel{
			Name:    fmt.Sprintf("Channel%d", i+1),
			Pattern: pattern,
		}
	}

	return Config{
		Dims:          dims,
		PixelSizeUM:   0.65,
		TimeIntervalS: 1.0,
		Channels:      channels,
		DataType:      "uint16",
		BaseIntensity: 100,
		NoiseLevel:    10,
	}
}

// Package generator fills arrays with synthetic microscopy patterns:
// gradients, radial falloff, standing waves, and Gaussian spots, per
// channel, with uniform additive noise on top.
package generator

import (
	"fmt"
	"math/rand"

	"hyperstack/pkg/stack"
)

// ChannelPatternCountError reports a configuration whose channel list does
// not cover the channel dimension.
type ChannelPatternCountError struct {
	// Patterns is the number of configured channel patterns.
	Patterns int

	// Channels is the channel dimension.
	Channels int
}

func (e *ChannelPatternCountError) Error() string {
	return fmt.Sprintf("number of channel patterns (%d) must match channel dimension (%d)",
		e.Patterns, e.Channels)
}

// SpotCountError reports a spot pattern configured with a negative count.
type SpotCountError struct {
	// Pattern is the configuration name of the offending variant.
	Pattern string

	// NumSpots is the configured count.
	NumSpots int
}

func (e *SpotCountError) Error() string {
	return fmt.Sprintf("pattern %q requires a non-negative spot count, got %d",
		e.Pattern, e.NumSpots)
}

// Generate builds a fully populated array from cfg. Each channel is painted
// with its configured pattern, then every pixel gets independent uniform
// noise in [-NoiseLevel, +NoiseLevel] and is clamped to be non-negative;
// NaN values clamp to zero. Dimension validation errors propagate unchanged;
// a channel list of the wrong length returns *ChannelPatternCountError and a
// spot pattern with a negative count returns *SpotCountError.
func Generate(cfg Config) (*stack.Array, error) {
	dims := cfg.Dims
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Channels) != dims.Channel {
		return nil, &ChannelPatternCountError{Patterns: len(cfg.Channels), Channels: dims.Channel}
	}
	for _, channel := range cfg.Channels {
		if err := checkPattern(channel.Pattern); err != nil {
			return nil, err
		}
	}

	data := make([]float32, dims.TotalElements())
	g := newGeometry(dims.Height, dims.Width)

	for c, channel := range cfg.Channels {
		// Each channel gets its own draw stream so channel contents do
		// not depend on generation order.
		rng := rand.New(rand.NewSource(cfg.Seed + int64(c)))
		fillChannel(data, dims, c, channel.Pattern, g, cfg.BaseIntensity, cfg.NoiseLevel, rng)
	}

	names := make([]string, len(cfg.Channels))
	for i, channel := range cfg.Channels {
		names[i] = channel.Name
	}
	return stack.New(dims, data, cfg.PixelSizeUM, cfg.TimeIntervalS, names, cfg.DataType)
}

// checkPattern rejects parameter values the paint loops cannot honor.
func checkPattern(p Pattern) error {
	switch pat := p.(type) {
	case GaussianSpots:
		if pat.NumSpots < 0 {
			return &SpotCountError{Pattern: pat.String(), NumSpots: pat.NumSpots}
		}
	case MovingSpots:
		if pat.NumSpots < 0 {
			return &SpotCountError{Pattern: pat.String(), NumSpots: pat.NumSpots}
		}
	}
	return nil
}

// fillChannel paints one channel across all timepoints, positions, and
// z-planes.
func fillChannel(data []float32, dims stack.Dimensions, c int, pattern Pattern, g geometry, baseIntensity, noiseLevel float32, rng *rand.Rand) {
	for t := 0; t < dims.Time; t++ {
		eval := pattern.field(t, g, baseIntensity, rng)

		for p := 0; p < dims.Position; p++ {
			for z := 0; z < dims.Z; z++ {
				offset := ((((t*dims.Position+p)*dims.Z+z)*dims.Channel + c) * dims.Height) * dims.Width
				for y := 0; y < dims.Height; y++ {
					row := offset + y*dims.Width
					for x := 0; x < dims.Width; x++ {
						value := eval(x, y)
						if noiseLevel != 0 {
							value += (rng.Float32() - 0.5) * 2 * noiseLevel
						}
						// Negative and NaN values clamp to zero.
						if !(value >= 0) {
							value = 0
						}
						data[row+x] = value
					}
				}
			}
		}
	}
}

// Package config provides YAML generation presets for hyperstack. A preset
// captures everything Generate needs: dimensions, calibration, intensity
// parameters, and the per-channel pattern list.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hyperstack/pkg/generator"
	"hyperstack/pkg/stack"
)

// Config represents a generation preset loaded from YAML.
type Config struct {
	// Dimensions is the TPZCYX shape of the generated array.
	Dimensions stack.Dimensions `yaml:"dimensions"`

	// PixelSizeUM is the lateral pixel size in micrometers.
	PixelSizeUM float64 `yaml:"pixel_size_um"`

	// TimeIntervalS is the interval between timepoints in seconds.
	TimeIntervalS float64 `yaml:"time_interval_s"`

	// BaseIntensity scales the structural patterns.
	BaseIntensity float32 `yaml:"base_intensity"`

	// NoiseLevel is the half-width of the additive uniform noise.
	NoiseLevel float32 `yaml:"noise_level"`

	// Seed drives the generator's noise stream.
	Seed int64 `yaml:"seed"`

	// DataType is the acquisition data-type label recorded in metadata.
	DataType string `yaml:"data_type"`

	// Channels lists one pattern per channel; the count must match the
	// channel dimension.
	Channels []ChannelSpec `yaml:"channels"`
}

// ChannelSpec pairs a channel name with its pattern description.
type ChannelSpec struct {
	Name    string      `yaml:"name"`
	Pattern PatternSpec `yaml:"pattern"`
}

// PatternSpec is the serializable description of one pattern variant. Type
// selects the variant; only the parameters that variant uses are consulted.
type PatternSpec struct {
	Type      string  `yaml:"type"`
	Value     float32 `yaml:"value,omitempty"`
	Min       float32 `yaml:"min,omitempty"`
	Max       float32 `yaml:"max,omitempty"`
	NumSpots  int     `yaml:"num_spots,omitempty"`
	Intensity float32 `yaml:"intensity,omitempty"`
	Frequency float32 `yaml:"frequency,omitempty"`
	Amplitude float32 `yaml:"amplitude,omitempty"`
	Speed     float32 `yaml:"speed,omitempty"`
}

// Pattern resolves Type and the variant's parameters into a generator
// pattern. An unknown type is a configuration error.
func (s PatternSpec) Pattern() (generator.Pattern, error) {
	switch s.Type {
	case "uniform":
		return generator.Uniform{Value: s.Value}, nil
	case "gradient":
		return generator.Gradient{}, nil
	case "circles":
		return generator.Circles{}, nil
	case "noise":
		return generator.Noise{Min: s.Min, Max: s.Max}, nil
	case "gaussian_spots":
		return generator.GaussianSpots{NumSpots: s.NumSpots, Intensity: s.Intensity}, nil
	case "sine_wave":
		return generator.SineWave{Frequency: s.Frequency, Amplitude: s.Amplitude}, nil
	case "moving_spots":
		return generator.MovingSpots{NumSpots: s.NumSpots, Speed: s.Speed}, nil
	default:
		return nil, fmt.Errorf("unknown pattern type %q", s.Type)
	}
}

// SpecFor returns the serializable description of a generator pattern, the
// inverse of PatternSpec.Pattern.
func SpecFor(p generator.Pattern) PatternSpec {
	switch pat := p.(type) {
	case generator.Uniform:
		return PatternSpec{Type: "uniform", Value: pat.Value}
	case generator.Gradient:
		return PatternSpec{Type: "gradient"}
	case generator.Circles:
		return PatternSpec{Type: "circles"}
	case generator.Noise:
		return PatternSpec{Type: "noise", Min: pat.Min, Max: pat.Max}
	case generator.GaussianSpots:
		return PatternSpec{Type: "gaussian_spots", NumSpots: pat.NumSpots, Intensity: pat.Intensity}
	case generator.SineWave:
		return PatternSpec{Type: "sine_wave", Frequency: pat.Frequency, Amplitude: pat.Amplitude}
	case generator.MovingSpots:
		return PatternSpec{Type: "moving_spots", NumSpots: pat.NumSpots, Speed: pat.Speed}
	default:
		return PatternSpec{Type: p.String()}
	}
}

// GeneratorConfig converts the preset into a generator configuration,
// resolving every channel's pattern spec.
func (c *Config) GeneratorConfig() (generator.Config, error) {
	channels := make([]generator.Channel, len(c.Channels))
	for i, spec := range c.Channels {
		pattern, err := spec.Pattern.Pattern()
		if err != nil {
			return generator.Config{}, fmt.Errorf("channel %q: %w", spec.Name, err)
		}
		channels[i] = generator.Channel{Name: spec.Name, Pattern: pattern}
	}

	return generator.Config{
		Dims:          c.Dimensions,
		PixelSizeUM:   c.PixelSizeUM,
		TimeIntervalS: c.TimeIntervalS,
		Channels:      channels,
		DataType:      c.DataType,
		BaseIntensity: c.BaseIntensity,
		NoiseLevel:    c.NoiseLevel,
		Seed:          c.Seed,
	}, nil
}

// FromGeneratorConfig builds the preset describing an in-memory generator
// configuration, for writing back to disk with SaveConfig.
func FromGeneratorConfig(gen generator.Config) *Config {
	channels := make([]ChannelSpec, len(gen.Channels))
	for i, ch := range gen.Channels {
		channels[i] = ChannelSpec{Name: ch.Name, Pattern: SpecFor(ch.Pattern)}
	}

	return &Config{
		Dimensions:    gen.Dims,
		PixelSizeUM:   gen.PixelSizeUM,
		TimeIntervalS: gen.TimeIntervalS,
		BaseIntensity: gen.BaseIntensity,
		NoiseLevel:    gen.NoiseLevel,
		Seed:          gen.Seed,
		DataType:      gen.DataType,
		Channels:      channels,
	}
}

// DefaultConfig returns a preset with default values: a short two-channel
// time series with a gradient channel and a Gaussian-spot channel.
func DefaultConfig() *Config {
	return FromGeneratorConfig(generator.DefaultConfig(stack.NewDimensions(3, 1, 2, 2, 64, 64)))
}

// LoadConfig loads a preset from a YAML file. If the file doesn't exist, it
// returns the default preset.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves a preset to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default preset file at the specified
// path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

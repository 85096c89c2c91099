package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hyperstack/pkg/generator"
	"hyperstack/pkg/stack"
)

// TestDefaultConfig verifies the default preset mirrors the generator
// defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dimensions != stack.NewDimensions(3, 1, 2, 2, 64, 64) {
		t.Errorf("Expected default dimensions 3x1x2x2x64x64, got %s", cfg.Dimensions)
	}
	if cfg.PixelSizeUM != 0.65 || cfg.TimeIntervalS != 1.0 {
		t.Errorf("Expected calibration 0.65/1.0, got %f/%f", cfg.PixelSizeUM, cfg.TimeIntervalS)
	}
	if cfg.BaseIntensity != 100 || cfg.NoiseLevel != 10 {
		t.Errorf("Expected base 100 and noise 10, got %f and %f", cfg.BaseIntensity, cfg.NoiseLevel)
	}
	if len(cfg.Channels) != 2 {
		t.Fatalf("Expected 2 channels, got %d", len(cfg.Channels))
	}
	if cfg.Channels[0].Pattern.Type != "gradient" {
		t.Errorf("Expected first channel gradient, got %q", cfg.Channels[0].Pattern.Type)
	}
	if cfg.Channels[1].Pattern.Type != "gaussian_spots" {
		t.Errorf("Expected second channel gaussian_spots, got %q", cfg.Channels[1].Pattern.Type)
	}
}

// TestPatternSpecRoundTrip verifies that every pattern variant survives the
// spec conversion in both directions
func TestPatternSpecRoundTrip(t *testing.T) {
	patterns := []generator.Pattern{
		generator.Uniform{Value: 150},
		generator.Gradient{},
		generator.Circles{},
		generator.Noise{Min: 50, Max: 200},
		generator.GaussianSpots{NumSpots: 3, Intensity: 800},
		generator.SineWave{Frequency: 0.1, Amplitude: 200},
		generator.MovingSpots{NumSpots: 2, Speed: 0.1},
	}

	for _, pattern := range patterns {
		t.Run(pattern.String(), func(t *testing.T) {
			spec := SpecFor(pattern)
			if spec.Type != pattern.String() {
				t.Errorf("Expected spec type %q, got %q", pattern.String(), spec.Type)
			}

			back, err := spec.Pattern()
			if err != nil {
				t.Fatalf("Failed to convert spec back to pattern: %v", err)
			}
			if !reflect.DeepEqual(back, pattern) {
				t.Errorf("Expected pattern %#v after round trip, got %#v", pattern, back)
			}
		})
	}
}

// TestPatternSpecUnknown verifies the recoverable unknown-type failure
func TestPatternSpecUnknown(t *testing.T) {
	spec := PatternSpec{Type: "plasma"}

	if _, err := spec.Pattern(); err == nil {
		t.Error("Expected error for unknown pattern type, got nil")
	}
}

// TestGeneratorConfig verifies preset-to-generator conversion
func TestGeneratorConfig(t *testing.T) {
	cfg := &Config{
		Dimensions:    stack.NewDimensions(2, 1, 1, 2, 8, 8),
		PixelSizeUM:   0.5,
		TimeIntervalS: 2.0,
		BaseIntensity: 200,
		NoiseLevel:    15,
		Seed:          42,
		DataType:      "uint12",
		Channels: []ChannelSpec{
			{Name: "A", Pattern: PatternSpec{Type: "uniform", Value: 50}},
			{Name: "B", Pattern: PatternSpec{Type: "sine_wave", Frequency: 0.1, Amplitude: 200}},
		},
	}

	gen, err := cfg.GeneratorConfig()
	if err != nil {
		t.Fatalf("Failed to convert preset: %v", err)
	}

	if gen.Dims != cfg.Dimensions {
		t.Errorf("Expected dimensions %s, got %s", cfg.Dimensions, gen.Dims)
	}
	if gen.Seed != 42 || gen.DataType != "uint12" {
		t.Errorf("Expected seed 42 and data type uint12, got %d and %q", gen.Seed, gen.DataType)
	}
	if len(gen.Channels) != 2 {
		t.Fatalf("Expected 2 channels, got %d", len(gen.Channels))
	}
	if gen.Channels[0] != (generator.Channel{Name: "A", Pattern: generator.Uniform{Value: 50}}) {
		t.Errorf("Unexpected first channel: %+v", gen.Channels[0])
	}

	// An invalid channel pattern fails with the channel named.
	cfg.Channels[1].Pattern.Type = "bogus"
	if _, err := cfg.GeneratorConfig(); err == nil {
		t.Error("Expected error for invalid channel pattern, got nil")
	}
}

// TestLoadConfigMissing verifies that a missing file yields the defaults
func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing config, got error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("Expected default preset for missing config file")
	}
}

// TestSaveLoadConfig verifies the preset round-trips through YAML
func TestSaveLoadConfig(t *testing.T) {
	cfg := FromGeneratorConfig(generator.Config{
		Dims:          stack.NewDimensions(4, 2, 3, 3, 32, 48),
		PixelSizeUM:   0.325,
		TimeIntervalS: 5.0,
		DataType:      "uint12",
		BaseIntensity: 250,
		NoiseLevel:    7.5,
		Seed:          1337,
		Channels: []generator.Channel{
			{Name: "DAPI", Pattern: generator.Circles{}},
			{Name: "GFP", Pattern: generator.GaussianSpots{NumSpots: 5, Intensity: 900}},
			{Name: "RFP", Pattern: generator.MovingSpots{NumSpots: 2, Speed: 0.25}},
		},
	})

	path := filepath.Join(t.TempDir(), "presets", "experiment.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("Expected preset to round-trip, got %+v, want %+v", loaded, cfg)
	}

	// The loaded preset still resolves to working generator patterns.
	gen, err := loaded.GeneratorConfig()
	if err != nil {
		t.Fatalf("Failed to convert loaded preset: %v", err)
	}
	if _, ok := gen.Channels[2].Pattern.(generator.MovingSpots); !ok {
		t.Errorf("Expected moving spots in third channel, got %s", gen.Channels[2].Pattern)
	}
}

// TestLoadConfigPartial verifies that unspecified keys keep their defaults
func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "noise_level: 25\nseed: 9\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.NoiseLevel != 25 || cfg.Seed != 9 {
		t.Errorf("Expected overrides 25/9, got %f/%d", cfg.NoiseLevel, cfg.Seed)
	}
	defaults := DefaultConfig()
	if cfg.Dimensions != defaults.Dimensions {
		t.Errorf("Expected default dimensions %s, got %s", defaults.Dimensions, cfg.Dimensions)
	}
	if cfg.BaseIntensity != defaults.BaseIntensity {
		t.Errorf("Expected default base intensity %f, got %f",
			defaults.BaseIntensity, cfg.BaseIntensity)
	}
}

// TestLoadConfigMalformed verifies parse failures are reported
func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("channels: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed config, got nil")
	}
}

// TestPresetNegativeSpotCount verifies that a hand-written preset with a
// negative spot count surfaces as a generator error
func TestPresetNegativeSpotCount(t *testing.T) {
	preset := `dimensions:
  time: 1
  position: 1
  z: 1
  channel: 1
  height: 8
  width: 8
channels:
  - name: Spots
    pattern:
      type: gaussian_spots
      num_spots: -1
      intensity: 800
`
	path := filepath.Join(t.TempDir(), "spots.yaml")
	if err := os.WriteFile(path, []byte(preset), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	gen, err := cfg.GeneratorConfig()
	if err != nil {
		t.Fatalf("Failed to convert preset: %v", err)
	}

	_, err = generator.Generate(gen)
	var spotErr *generator.SpotCountError
	if !errors.As(err, &spotErr) {
		t.Fatalf("Expected *generator.SpotCountError, got %v", err)
	}
	if spotErr.NumSpots != -1 {
		t.Errorf("Expected count -1 in the error, got %d", spotErr.NumSpots)
	}
}

// TestCreateDefaultConfigFile verifies writing the default preset
func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("Failed to create default config: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load created config: %v", err)
	}
	if !reflect.DeepEqual(loaded, DefaultConfig()) {
		t.Error("Expected created file to hold the default preset")
	}
}

// Package splitfmt implements the split on-disk format for 6D arrays: a
// human-readable YAML metadata file at the caller's path, paired with a raw
// little-endian float32 payload at the same path with its extension replaced
// by ".data". The payload carries no header, checksum, or length prefix; its
// size is implied by the dimensions recorded in the metadata, which is what
// makes cheap metadata-only validation possible.
package splitfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"hyperstack/internal/f32le"
	"hyperstack/pkg/stack"
)

// FormatVersion is stamped into every metadata artifact. There is exactly
// one version; no migration path exists.
const FormatVersion = "1.0"

// DataSuffix is the extension of the binary payload artifact.
const DataSuffix = ".data"

// metadataOverhead is a rough per-artifact allowance for the YAML sidecar
// when estimating on-disk size.
const metadataOverhead = 1024

// Metadata is the structured half of the split format: every non-bulk field
// of an array plus the format version and a creation timestamp.
type Metadata struct {
	Dimensions    stack.Dimensions `yaml:"dimensions"`
	PixelSizeUM   float64          `yaml:"pixel_size_um"`
	TimeIntervalS float64          `yaml:"time_interval_s"`
	ChannelNames  []string         `yaml:"channel_names"`
	DataType      string           `yaml:"data_type"`
	FormatVersion string           `yaml:"format_version"`
	CreatedAt     string           `yaml:"created_at"`
}

// MetadataFromArray projects an array's non-bulk fields into a Metadata
// value stamped with the current format version and an RFC 3339 creation
// timestamp.
func MetadataFromArray(arr *stack.Array) Metadata {
	return Metadata{
		Dimensions:    arr.Dimensions(),
		PixelSizeUM:   arr.PixelSizeUM(),
		TimeIntervalS: arr.TimeIntervalS(),
		ChannelNames:  arr.ChannelNames(),
		DataType:      arr.DataType(),
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// ExpectedDataBytes returns the required byte length of the paired data
// artifact: four bytes per sample.
func (m Metadata) ExpectedDataBytes() int64 {
	return int64(m.Dimensions.TotalElements()) * stack.BytesPerSample
}

// DataPath returns the data-artifact path paired with a metadata path. The
// metadata path's extension is replaced by the data suffix, or the suffix is
// appended when the path has none: "stack.meta" pairs with "stack.data".
func DataPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + DataSuffix
}

// Save writes arr to the split format: metadata as YAML at path, samples as
// raw little-endian float32 in TPZCYX row-major order at DataPath(path).
// The two files are written independently, so a failure can leave only the
// metadata artifact behind; Load and Validate reject such orphans.
func Save(arr *stack.Array, path string) error {
	expected := arr.Dimensions().TotalElements()
	if len(arr.Data()) != expected {
		return &BufferSizeError{Elements: len(arr.Data()), Expected: expected}
	}

	meta := MetadataFromArray(arr)
	encoded, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %v", err)
	}

	if err := os.WriteFile(DataPath(path), f32le.Bytes(arr.Data()), 0644); err != nil {
		return fmt.Errorf("failed to write data file: %v", err)
	}
	return nil
}

// Load reads the split format back into an array. It fails with a
// *MetadataError for unparseable metadata, ErrDataFileMissing when the data
// artifact is absent, a *SizeMismatchError when the data artifact's length
// contradicts the metadata, and propagates the container's shape and channel
// errors when the metadata is internally inconsistent.
func Load(path string) (*stack.Array, error) {
	meta, err := readMetadata(path)
	if err != nil {
		return nil, err
	}

	dataPath := DataPath(path)
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataFileMissing, dataPath)
		}
		return nil, fmt.Errorf("failed to read data file: %v", err)
	}

	if int64(len(raw)) != meta.ExpectedDataBytes() {
		return nil, &SizeMismatchError{
			ExpectedBytes: meta.ExpectedDataBytes(),
			ActualBytes:   int64(len(raw)),
		}
	}

	samples := make([]float32, meta.Dimensions.TotalElements())
	f32le.Decode(samples, raw)

	return stack.New(meta.Dimensions, samples, meta.PixelSizeUM, meta.TimeIntervalS,
		meta.ChannelNames, meta.DataType)
}

// Validate checks a dataset without reading the payload: it parses the
// metadata artifact and confirms the data artifact exists with exactly the
// byte length the metadata implies. It returns the parsed metadata, never
// mutates storage, and costs one file read plus one stat regardless of
// array size.
func Validate(path string) (Metadata, error) {
	meta, err := readMetadata(path)
	if err != nil {
		return Metadata{}, err
	}

	dataPath := DataPath(path)
	info, err := os.Stat(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{}, fmt.Errorf("%w: %s", ErrDataFileMissing, dataPath)
		}
		return Metadata{}, fmt.Errorf("failed to stat data file: %v", err)
	}

	if info.Size() != meta.ExpectedDataBytes() {
		return Metadata{}, &SizeMismatchError{
			ExpectedBytes: meta.ExpectedDataBytes(),
			ActualBytes:   info.Size(),
		}
	}
	return meta, nil
}

// EstimateFileSize returns the approximate total on-disk footprint of arr in
// the split format: the exact payload size plus a rough allowance for the
// metadata sidecar.
func EstimateFileSize(arr *stack.Array) int {
	return arr.MemoryUsage() + 2*metadataOverhead
}

func readMetadata(path string) (Metadata, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata file: %v", err)
	}
	var meta Metadata
	if err := yaml.Unmarshal(encoded, &meta); err != nil {
		return Metadata{}, &MetadataError{Path: path, Err: err}
	}
	return meta, nil
}

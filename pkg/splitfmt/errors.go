package splitfmt

import (
	"errors"
	"fmt"
)

// ErrDataFileMissing reports that the metadata artifact exists but its paired
// data artifact does not. It is wrapped with the missing path.
var ErrDataFileMissing = errors.New("data file not found")

// MetadataError reports a metadata artifact that could not be parsed.
type MetadataError struct {
	// Path is the metadata artifact that failed to parse.
	Path string

	// Err is the underlying decode error.
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("failed to parse metadata file %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// SizeMismatchError reports a data artifact whose byte length does not match
// the size implied by the paired metadata's dimensions.
type SizeMismatchError struct {
	// ExpectedBytes is dimensions.TotalElements() * 4.
	ExpectedBytes int64

	// ActualBytes is the observed data artifact length.
	ActualBytes int64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("data file size mismatch: expected %d bytes, got %d",
		e.ExpectedBytes, e.ActualBytes)
}

// BufferSizeError reports an array whose sample buffer no longer matches its
// dimensions at save time. The container rejects every operation that would
// cause this, so hitting it means the buffer was resized behind the
// container's back.
type BufferSizeError struct {
	// Elements is the actual buffer length.
	Elements int

	// Expected is dimensions.TotalElements().
	Expected int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("array buffer holds %d samples, dimensions require %d",
		e.Elements, e.Expected)
}

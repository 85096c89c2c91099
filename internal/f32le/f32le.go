// Package f32le converts float32 sample buffers to and from their
// little-endian byte representation. Each sample is converted explicitly,
// so encoded bytes are identical on every architecture.
package f32le

import (
	"encoding/binary"
	"math"
)

// SampleSize is the encoded size of one sample in bytes.
const SampleSize = 4

// EncodedLen returns the number of bytes needed to encode n samples.
func EncodedLen(n int) int {
	return n * SampleSize
}

// Encode writes the little-endian encoding of vals into dst, which must hold
// at least EncodedLen(len(vals)) bytes.
func Encode(dst []byte, vals []float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(dst[i*SampleSize:], math.Float32bits(v))
	}
}

// Bytes returns the little-endian encoding of vals in a new buffer.
func Bytes(vals []float32) []byte {
	dst := make([]byte, EncodedLen(len(vals)))
	Encode(dst, vals)
	return dst
}

// Decode fills dst with samples decoded from little-endian data, which must
// hold at least EncodedLen(len(dst)) bytes. Bit patterns round-trip exactly,
// NaN payloads included.
func Decode(dst []float32, data []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*SampleSize:]))
	}
}

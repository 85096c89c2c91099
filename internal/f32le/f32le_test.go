package f32le

import (
	"math"
	"testing"
)

// TestEncode verifies the little-endian byte layout of encoded samples
func TestEncode(t *testing.T) {
	// 1.0 is 0x3F800000, -2.5 is 0xC0200000.
	got := Bytes([]float32{1.0, -2.5})

	want := []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x20, 0xC0}
	if len(got) != len(want) {
		t.Fatalf("Expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected byte 0x%02X at offset %d, got 0x%02X", want[i], i, got[i])
		}
	}
}

// TestRoundTrip verifies that encoding and decoding preserves every bit
// pattern, including non-finite values
func TestRoundTrip(t *testing.T) {
	vals := []float32{
		0, 1, -1, 0.5, -0.5,
		float32(math.Inf(1)), float32(math.Inf(-1)),
		math.Float32frombits(0x7FC00001), // NaN with payload
		math.SmallestNonzeroFloat32, math.MaxFloat32,
		-math.MaxFloat32, 3.1415927,
	}

	decoded := make([]float32, len(vals))
	Decode(decoded, Bytes(vals))

	for i := range vals {
		if math.Float32bits(decoded[i]) != math.Float32bits(vals[i]) {
			t.Errorf("Value %d did not round-trip: expected bits 0x%08X, got 0x%08X",
				i, math.Float32bits(vals[i]), math.Float32bits(decoded[i]))
		}
	}
}

// TestEncodedLen verifies the four-bytes-per-sample sizing
func TestEncodedLen(t *testing.T) {
	if EncodedLen(0) != 0 {
		t.Errorf("Expected 0 bytes for 0 samples, got %d", EncodedLen(0))
	}
	if EncodedLen(1024) != 4096 {
		t.Errorf("Expected 4096 bytes for 1024 samples, got %d", EncodedLen(1024))
	}
}

// BenchmarkEncode benchmarks encoding a 512x512 frame
func BenchmarkEncode(b *testing.B) {
	vals := make([]float32, 512*512)
	for i := range vals {
		vals[i] = float32(i)
	}
	dst := make([]byte, EncodedLen(len(vals)))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Encode(dst, vals)
	}
}

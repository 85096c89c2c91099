package generator

import (
	"math"
	"math/rand"
)

// geometry carries per-channel frame geometry shared by the pattern
// formulas.
type geometry struct {
	width, height float64
	centerX       float64
	centerY       float64
	// maxDistance is the distance from the frame center to a corner, used
	// to normalize radial falloff.
	maxDistance float64
}

func newGeometry(height, width int) geometry {
	g := geometry{
		width:   float64(width),
		height:  float64(height),
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
	}
	g.maxDistance = math.Sqrt(g.centerX*g.centerX + g.centerY*g.centerY)
	return g
}

// Pattern is one synthetic structure painted into a channel. field returns
// an evaluator for the noise-free pattern value at (x,y) for timepoint t;
// time-varying patterns derive their per-timepoint state here, once, rather
// than per pixel. rng is the channel's draw stream and is only consumed by
// value-noise patterns.
type Pattern interface {
	field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32

	// String returns the pattern's configuration name, e.g. "gradient".
	String() string
}

// Uniform paints every pixel with the same value, ignoring base intensity.
type Uniform struct {
	Value float32
}

func (u Uniform) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	return func(x, y int) float32 {
		return u.Value
	}
}

func (u Uniform) String() string { return "uniform" }

// Gradient paints a linear ramp from dark at the top-left corner to the base
// intensity at the bottom-right.
type Gradient struct{}

func (Gradient) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	base := float64(baseIntensity)
	return func(x, y int) float32 {
		dx := float64(x) / g.width
		dy := float64(y) / g.height
		return float32(base * (dx + dy) / 2)
	}
}

func (Gradient) String() string { return "gradient" }

// Circles paints a radial falloff from the base intensity at the frame
// center to zero at the corners.
type Circles struct{}

func (Circles) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	base := float64(baseIntensity)
	return func(x, y int) float32 {
		dx := float64(x) - g.centerX
		dy := float64(y) - g.centerY
		falloff := 1 - math.Sqrt(dx*dx+dy*dy)/g.maxDistance
		if falloff < 0 {
			falloff = 0
		}
		return float32(base * falloff)
	}
}

func (Circles) String() string { return "circles" }

// Noise draws every pixel uniformly from [Min, Max). The generator's
// additive noise still applies on top; the two noise sources compound.
type Noise struct {
	Min float32
	Max float32
}

func (n Noise) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	return func(x, y int) float32 {
		return n.Min + rng.Float32()*(n.Max-n.Min)
	}
}

func (n Noise) String() string { return "noise" }

// GaussianSpots paints NumSpots Gaussian peaks over a dim background of a
// tenth of the base intensity. Spot center and width are drawn from a
// source seeded per (spot, timepoint), so every spot's trajectory is
// reproducible run to run and independent of any other draw stream.
type GaussianSpots struct {
	NumSpots  int
	Intensity float32
}

func (gs GaussianSpots) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	type spot struct {
		x, y, twoSigmaSq float64
	}
	spots := make([]spot, gs.NumSpots)
	for id := range spots {
		src := rand.New(rand.NewSource(int64(id*12345 + t*67890)))
		sx := src.Float64() * g.width
		sy := src.Float64() * g.height
		sigma := 10 + src.Float64()*20
		spots[id] = spot{x: sx, y: sy, twoSigmaSq: 2 * sigma * sigma}
	}

	background := float64(baseIntensity) * 0.1
	intensity := float64(gs.Intensity)
	return func(x, y int) float32 {
		value := background
		for _, s := range spots {
			dx := float64(x) - s.x
			dy := float64(y) - s.y
			value += intensity * math.Exp(-(dx*dx+dy*dy)/s.twoSigmaSq)
		}
		return float32(value)
	}
}

func (gs GaussianSpots) String() string { return "gaussian_spots" }

// SineWave paints a 2D standing wave around the base intensity. Frequency
// counts full periods across each frame axis.
type SineWave struct {
	Frequency float32
	Amplitude float32
}

func (sw SineWave) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	base := float64(baseIntensity)
	amplitude := float64(sw.Amplitude)
	phase := 2 * math.Pi * float64(sw.Frequency)
	return func(x, y int) float32 {
		waveX := math.Sin(float64(x) * phase / g.width)
		waveY := math.Sin(float64(y) * phase / g.height)
		return float32(base + amplitude*waveX*waveY)
	}
}

func (sw SineWave) String() string { return "sine_wave" }

// MovingSpots paints NumSpots fixed-width Gaussian peaks orbiting the frame
// center, advancing by Speed radians per timepoint, over a background of a
// fifth of the base intensity.
type MovingSpots struct {
	NumSpots int
	Speed    float32
}

// Orbit geometry and peak shape of moving spots.
const (
	movingSpotRadius = 50.0
	movingSpotSigma  = 15.0
	movingSpotPeak   = 500.0
)

func (ms MovingSpots) field(t int, g geometry, baseIntensity float32, rng *rand.Rand) func(x, y int) float32 {
	type spot struct {
		x, y float64
	}
	spots := make([]spot, ms.NumSpots)
	for id := range spots {
		angle := float64(t)*float64(ms.Speed) + float64(id)*2*math.Pi/float64(ms.NumSpots)
		spots[id] = spot{
			x: g.centerX + movingSpotRadius*math.Cos(angle),
			y: g.centerY + movingSpotRadius*math.Sin(angle),
		}
	}

	background := float64(baseIntensity) * 0.2
	const twoSigmaSq = 2 * movingSpotSigma * movingSpotSigma
	return func(x, y int) float32 {
		value := background
		for _, s := range spots {
			dx := float64(x) - s.x
			dy := float64(y) - s.y
			value += movingSpotPeak * math.Exp(-(dx*dx+dy*dy)/twoSigmaSq)
		}
		return float32(value)
	}
}

func (ms MovingSpots) String() string { return "moving_spots" }

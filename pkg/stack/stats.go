package stack

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats summarizes the sample distribution of a single frame. All
// statistics are computed in float64 even though samples are float32, so
// rounding error does not compound across large pixel counts.
type FrameStats struct {
	Mean   float64
	Median float64
	// StdDev is the population standard deviation (divisor N).
	StdDev float64
	Min    float64
	Max    float64
	// TotalPixels is the number of samples in the frame.
	TotalPixels int
	// SaturatedPixels counts samples at or above SaturationThreshold.
	SaturatedPixels int
	// SaturationThreshold echoes the threshold the stats were computed
	// with, for provenance.
	SaturationThreshold float64
}

// ComputeFrameStats computes descriptive statistics over one frame view.
// The median is exact: the middle of a sorted copy, averaging the two middle
// values for even-length frames. An empty frame yields zeros for every
// computed statistic; the threshold is still recorded.
func ComputeFrameStats(frame Frame, saturationThreshold float64) FrameStats {
	vals := frame.Float64s()
	if len(vals) == 0 {
		return FrameStats{SaturationThreshold: saturationThreshold}
	}

	saturated := 0
	for _, v := range vals {
		if v >= saturationThreshold {
			saturated++
		}
	}

	mean := stat.Mean(vals, nil)
	stdDev := stat.PopStdDev(vals, nil)

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return FrameStats{
		Mean:                mean,
		Median:              median,
		StdDev:              stdDev,
		Min:                 sorted[0],
		Max:                 sorted[n-1],
		TotalPixels:         n,
		SaturatedPixels:     saturated,
		SaturationThreshold: saturationThreshold,
	}
}

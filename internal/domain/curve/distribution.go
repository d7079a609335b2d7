package curve

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// Source provides uniform floats in [0,1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Distribution is a discrete set of intensities with parallel weights.
// Both slices always have the same, non-zero length.
type Distribution struct {
	Intensities []int
	Weights     []float64
}

// Sample discretises the curve through points into a Distribution.
//
// Samples with a non-positive weight are discarded, intensities are truncated
// to integers and clipped to [1,100], weights are clipped to [0,1]. A zero
// weight sum becomes a uniform distribution, and a curve with no positive
// sample at all falls back to a uniform distribution over every sampled
// intensity, so the result is never empty.
func Sample(points Points, steps int) Distribution {
	samples := Interpolate(points, steps)

	dist := Distribution{
		Intensities: make([]int, 0, len(samples)),
		Weights:     make([]float64, 0, len(samples)),
	}

	for _, s := range samples {
		if s.Weight <= 0 || math.IsNaN(s.Weight) {
			continue
		}

		dist.Intensities = append(dist.Intensities, toIntensity(s.Intensity))
		dist.Weights = append(dist.Weights, clamp(s.Weight, MinWeight, MaxWeight))
	}

	if len(dist.Intensities) == 0 {
		for _, s := range samples {
			dist.Intensities = append(dist.Intensities, toIntensity(s.Intensity))
			dist.Weights = append(dist.Weights, 0)
		}
	}

	if dist.total() == 0 {
		for i := range dist.Weights {
			dist.Weights[i] = 1
		}
	}

	return dist
}

// Len returns the number of entries in the distribution.
func (d Distribution) Len() int {
	return len(d.Intensities)
}

// UpperHalf keeps the entries whose intensity ranks in the upper half.
// The rank indices are computed on and applied to the same slices.
func (d Distribution) UpperHalf() Distribution {
	order := make([]int, d.Len())
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(d.Intensities[a], d.Intensities[b])
	})

	order = order[len(order)/2:]

	upper := Distribution{
		Intensities: make([]int, len(order)),
		Weights:     make([]float64, len(order)),
	}

	for i, idx := range order {
		upper.Intensities[i] = d.Intensities[idx]
		upper.Weights[i] = d.Weights[idx]
	}

	if upper.total() == 0 {
		for i := range upper.Weights {
			upper.Weights[i] = 1
		}
	}

	return upper
}

// Pick draws one intensity with probability proportional to its weight.
// It returns 0 for an empty distribution.
func (d Distribution) Pick(src Source) int {
	if d.Len() == 0 {
		return 0
	}

	total := d.total()
	if total <= 0 {
		return d.Intensities[int(src.Float64()*float64(d.Len()))%d.Len()]
	}

	r := src.Float64() * total

	var cumulative float64

	for i, w := range d.Weights {
		cumulative += w
		if r < cumulative {
			return d.Intensities[i]
		}
	}

	// Rounding can leave r at the very top of the range.
	for i := d.Len() - 1; i >= 0; i-- {
		if d.Weights[i] > 0 {
			return d.Intensities[i]
		}
	}

	return d.Intensities[d.Len()-1]
}

func (d Distribution) total() float64 {
	var sum float64
	for _, w := range d.Weights {
		sum += w
	}

	return sum
}

// DrawDuration picks a duration uniformly from [lo,hi] rounded to 100ms.
// Reversed bounds are accepted.
func DrawDuration(src Source, lo, hi time.Duration) time.Duration {
	d := float64(lo) + src.Float64()*float64(hi-lo)

	return time.Duration(d).Round(100 * time.Millisecond)
}

func toIntensity(x float64) int {
	if math.IsNaN(x) {
		return MinIntensity
	}

	return clamp(int(clamp(x, 0, MaxIntensity+1)), MinIntensity, MaxIntensity)
}

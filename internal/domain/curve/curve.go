package curve

import (
	"cmp"
	"slices"
)

const (
	// MinIntensity is the lowest intensity a distribution can yield.
	MinIntensity = 1
	// MaxIntensity is the highest intensity a distribution can yield.
	MaxIntensity = 100
	// MinWeight and MaxWeight bound a control point weight.
	MinWeight = 0.0
	MaxWeight = 1.0
	// DefaultSteps is the number of Bézier samples used for the distribution.
	DefaultSteps = 100
	// MaxSteps bounds the sampling resolution accepted from clients.
	MaxSteps = 10_000
)

// Point is a single control point: an intensity percentage and its relative weight.
type Point struct {
	Intensity float64
	Weight    float64
}

// Points holds the three control points in storage (edit) order.
// Ordering by intensity is recomputed on every read via Sorted.
type Points [3]Point

// Sorted returns the points ordered by intensity. Equal intensities keep
// their storage order and produce a degenerate segment, which is allowed.
func (p Points) Sorted() Points {
	sorted := p
	slices.SortStableFunc(sorted[:], func(a, b Point) int {
		return cmp.Compare(a.Intensity, b.Intensity)
	})

	return sorted
}

// Nearest returns the index of the point closest to intensity along the x axis
// and that distance. Ties resolve to the lowest index.
func (p Points) Nearest(intensity float64) (int, float64) {
	best, bestDist := 0, abs(p[0].Intensity-intensity)

	for i := 1; i < len(p); i++ {
		if d := abs(p[i].Intensity - intensity); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, bestDist
}

// Interpolate evaluates the quadratic Bézier through the sorted points at
// steps evenly spaced parameters in [0,1], endpoints included.
func Interpolate(points Points, steps int) []Point {
	if steps < 1 {
		steps = DefaultSteps
	}

	p0, p1, p2 := sortedTriple(points)
	out := make([]Point, steps)

	for i := range steps {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}

		out[i] = Point{
			Intensity: quadratic(p0.Intensity, p1.Intensity, p2.Intensity, t),
			Weight:    quadratic(p0.Weight, p1.Weight, p2.Weight, t),
		}
	}

	return out
}

func sortedTriple(points Points) (Point, Point, Point) {
	s := points.Sorted()

	return s[0], s[1], s[2]
}

// quadratic is the one-dimensional quadratic Bézier form.
func quadratic(a, b, c, t float64) float64 {
	u := 1 - t

	return u*u*a + 2*u*t*b + t*t*c
}

func clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

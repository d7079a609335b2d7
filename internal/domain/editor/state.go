package editor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/shocker-link/internal/domain/curve"
)

const (
	// MinDurationBound and MaxDurationBound limit both duration bounds.
	MinDurationBound = 100 * time.Millisecond
	MaxDurationBound = 5 * time.Second

	// View bounds are integer intensity percentages.
	minViewLower = 1
	maxViewLower = 99
	minViewUpper = 2
	maxViewUpper = 100
)

// ErrInvalidInput is returned for user edits that cannot be applied.
var ErrInvalidInput = errors.New("invalid input")

// State is the editable part of a session and the payload of a snapshot.
type State struct {
	Points      curve.Points
	MinDuration time.Duration
	MaxDuration time.Duration
	ViewMin     int
	ViewMax     int
}

// Default returns the built-in state used when nothing was persisted.
func Default() State {
	return State{
		Points:      curve.Points{{Intensity: 36, Weight: 0.5}, {Intensity: 45, Weight: 0.4}, {Intensity: 59, Weight: 0.25}},
		MinDuration: 400 * time.Millisecond,
		MaxDuration: 1700 * time.Millisecond,
		ViewMin:     30,
		ViewMax:     68,
	}
}

// WithDurations returns s with new duration bounds clamped to
// [MinDurationBound, MaxDurationBound]. A minimum above the maximum is rejected.
func (s State) WithDurations(lo, hi time.Duration) (State, error) {
	lo = clampDuration(lo)
	hi = clampDuration(hi)

	if lo > hi {
		return s, fmt.Errorf("min duration %s above max duration %s: %w", lo, hi, ErrInvalidInput)
	}

	s.MinDuration, s.MaxDuration = lo, hi

	return s, nil
}

// WithViewMin moves the lower view bound, keeping it below the upper one.
func (s State) WithViewMin(v int) State {
	if v >= s.ViewMax {
		v = max(minViewLower, s.ViewMax-1)
	}

	s.ViewMin = max(minViewLower, min(maxViewLower, v))

	return s
}

// WithViewMax moves the upper view bound, keeping it above the lower one.
func (s State) WithViewMax(v int) State {
	if v <= s.ViewMin {
		v = min(maxViewUpper, s.ViewMin+1)
	}

	s.ViewMax = min(maxViewUpper, max(minViewUpper, v))

	return s
}

// WithView applies both view bounds, lower first.
func (s State) WithView(lo, hi int) State {
	return s.WithViewMax(maxViewUpper).WithViewMin(lo).WithViewMax(hi)
}

// Normalize clamps every field into its allowed range.
func (s State) Normalize() State {
	for i, p := range s.Points {
		s.Points[i] = ClampPoint(p)
	}

	s.MinDuration = clampDuration(s.MinDuration)
	s.MaxDuration = clampDuration(s.MaxDuration)

	if s.MinDuration > s.MaxDuration {
		s.MinDuration, s.MaxDuration = s.MaxDuration, s.MinDuration
	}

	lo, hi := s.ViewMin, s.ViewMax
	s.ViewMin, s.ViewMax = minViewLower, maxViewUpper

	return s.WithView(lo, hi)
}

// ClampPoint clips a control point into the editable area.
func ClampPoint(p curve.Point) curve.Point {
	return curve.Point{
		Intensity: max(curve.MinIntensity, min(p.Intensity, curve.MaxIntensity)),
		Weight:    max(curve.MinWeight, min(p.Weight, curve.MaxWeight)),
	}
}

// ParsePoint parses the free-text form "intensity,weight" where weight is a
// percentage. Values outside the editable area are clipped.
func ParsePoint(text string) (curve.Point, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok || strings.Contains(ys, ",") {
		return curve.Point{}, fmt.Errorf("expected \"intensity,weight\", got %q: %w", text, ErrInvalidInput)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return curve.Point{}, fmt.Errorf("parse intensity %q: %w", xs, ErrInvalidInput)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return curve.Point{}, fmt.Errorf("parse weight %q: %w", ys, ErrInvalidInput)
	}

	if !finite(x) || !finite(y) {
		return curve.Point{}, fmt.Errorf("non-finite value in %q: %w", text, ErrInvalidInput)
	}

	return ClampPoint(curve.Point{
		Intensity: x,
		Weight:    max(0, min(y, 100)) / 100,
	}), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampDuration(d time.Duration) time.Duration {
	return max(MinDurationBound, min(d, MaxDurationBound))
}
